// Package fuzzy implements the rule-based discount inference used by the
// store's daily pricing pass. It is a small Mamdani-style evaluator over
// piecewise-linear membership functions with centroid defuzzification:
// deterministic, stateless per query, no persistent mutation.
package fuzzy

import "math"

// MembershipFunc maps a crisp value to a membership degree in [0,1].
type MembershipFunc func(x float64) float64

// Trimf returns a triangular membership function with feet a and c and
// peak b. A degenerate left edge (a == b) or right edge (b == c) is
// treated as vertical, so the peak sits on the domain boundary.
func Trimf(a, b, c float64) MembershipFunc {
	return func(x float64) float64 {
		if x < a || x > c {
			return 0
		}
		if x < b {
			if b == a {
				return 1
			}
			return (x - a) / (b - a)
		}
		if b == c {
			return 1
		}
		return (c - x) / (c - b)
	}
}

// AutoMF3 partitions [min, max] into three evenly-spaced triangular
// levels. The low level peaks at the domain minimum, the middle level at
// the midpoint, and the high level at the maximum, with linear ramps
// between, matching automatic three-way membership partitioning.
func AutoMF3(min, max float64) (poor, average, good MembershipFunc) {
	mid := (min + max) / 2
	poor = Trimf(min, min, mid)
	average = Trimf(min, mid, max)
	good = Trimf(mid, max, max)
	return
}

// Shapes parameterizes the three output membership triangles of the
// discount consequent, each given as [foot, peak, foot].
type Shapes struct {
	Low    [3]float64
	Medium [3]float64
	High   [3]float64
}

// DefaultShapes returns the reference discount output memberships:
// low peaking at 0 over [0,5], medium peaking at 10 over [5,15],
// high peaking at 22 over [15,30].
func DefaultShapes() Shapes {
	return Shapes{
		Low:    [3]float64{0, 0, 5},
		Medium: [3]float64{5, 10, 15},
		High:   [3]float64{15, 22, 30},
	}
}

// DiscountEngine maps (stock level, recent sales level) to a discount
// percentage. Both inputs live on the 0-100 range; the output lies within
// the support of the configured shapes (0-30 for the defaults).
type DiscountEngine struct {
	stockPoor, stockAvg, stockGood MembershipFunc
	salesPoor, salesAvg, salesGood MembershipFunc

	low, medium, high MembershipFunc
	universe          []float64 // discretized output domain for centroid
}

// NewDiscountEngine builds a DiscountEngine with the given output shapes.
func NewDiscountEngine(shapes Shapes) *DiscountEngine {
	e := &DiscountEngine{
		low:    Trimf(shapes.Low[0], shapes.Low[1], shapes.Low[2]),
		medium: Trimf(shapes.Medium[0], shapes.Medium[1], shapes.Medium[2]),
		high:   Trimf(shapes.High[0], shapes.High[1], shapes.High[2]),
	}
	e.stockPoor, e.stockAvg, e.stockGood = AutoMF3(0, 100)
	e.salesPoor, e.salesAvg, e.salesGood = AutoMF3(0, 100)

	// Unit-step discretization of the output domain, as in the reference.
	upper := math.Max(shapes.Low[2], math.Max(shapes.Medium[2], shapes.High[2]))
	for z := 0.0; z <= upper; z++ {
		e.universe = append(e.universe, z)
	}
	return e
}

// Discount evaluates the rule base for the given stock and sales levels
// and returns the defuzzified discount percentage. Inputs are clamped to
// [0,100]. Identical inputs always produce identical outputs.
//
// Rules:
//  1. stock poor    OR  sales poor → high
//  2. stock average OR  sales average → medium
//  3. stock good    AND sales good → low
//  4. stock good    AND sales poor → medium
//  5. stock poor    AND sales good → medium
func (e *DiscountEngine) Discount(stock, sales float64) float64 {
	s := clamp(stock, 0, 100)
	v := clamp(sales, 0, 100)

	actHigh := math.Max(e.stockPoor(s), e.salesPoor(v))
	actLow := math.Min(e.stockGood(s), e.salesGood(v))
	actMedium := math.Max(e.stockAvg(s), e.salesAvg(v))
	actMedium = math.Max(actMedium, math.Min(e.stockGood(s), e.salesPoor(v)))
	actMedium = math.Max(actMedium, math.Min(e.stockPoor(s), e.salesGood(v)))

	// Min-implication per rule, max-aggregation across rules, centroid.
	var num, den float64
	for _, z := range e.universe {
		mu := math.Max(math.Min(actLow, e.low(z)),
			math.Max(math.Min(actMedium, e.medium(z)), math.Min(actHigh, e.high(z))))
		num += z * mu
		den += mu
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

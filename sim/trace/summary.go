package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDiscounts  int
	MeanDiscountPct float64
	MaxDiscountPct  float64
	FlooredCount    int // decisions where the margin floor won
	StockoutCount   int
	ByProduct       map[string]int // product → count of discount decisions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ByProduct: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDiscounts = len(st.Discounts)
	summary.StockoutCount = len(st.Stockouts)

	if len(st.Discounts) > 0 {
		totalPct := 0.0
		for _, d := range st.Discounts {
			summary.ByProduct[d.Product]++
			totalPct += d.DiscountPct
			if d.DiscountPct > summary.MaxDiscountPct {
				summary.MaxDiscountPct = d.DiscountPct
			}
			if d.Floored {
				summary.FlooredCount++
			}
		}
		summary.MeanDiscountPct = totalPct / float64(len(st.Discounts))
	}

	return summary
}

// Aggregates end-of-run statistics over the daily ledger for final reporting.

package sim

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics about a finished run for final reporting.
type Summary struct {
	Days              int
	TotalProfit       float64
	MeanDailyProfit   float64
	MedianDailyProfit float64
	P90DailyProfit    float64
	BestDay           int
	WorstDay          int
	UnitsSold         int
}

// Summarize computes a Summary from the ledger's day records.
func Summarize(l *Ledger) Summary {
	s := Summary{Days: len(l.Days)}
	if len(l.Days) == 0 {
		return s
	}

	profits := make([]float64, 0, len(l.Days))
	best, worst := l.Days[0], l.Days[0]
	for _, d := range l.Days {
		profits = append(profits, d.Profit)
		s.UnitsSold += d.ProductsSold
		if d.Profit > best.Profit {
			best = d
		}
		if d.Profit < worst.Profit {
			worst = d
		}
	}
	s.BestDay = best.Day
	s.WorstDay = worst.Day
	s.TotalProfit = l.TotalProfit()

	sort.Float64s(profits)
	s.MeanDailyProfit = stat.Mean(profits, nil)
	s.MedianDailyProfit = stat.Quantile(0.5, stat.Empirical, profits, nil)
	s.P90DailyProfit = stat.Quantile(0.9, stat.Empirical, profits, nil)
	return s
}

// Print displays the aggregated run summary.
func (s Summary) Print(wallTime time.Duration) {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Simulated Days       : %d\n", s.Days)
	fmt.Printf("Total Profit         : %.2f\n", s.TotalProfit)
	if s.Days > 0 {
		fmt.Printf("Mean Daily Profit    : %.2f\n", s.MeanDailyProfit)
		fmt.Printf("Median Daily Profit  : %.2f\n", s.MedianDailyProfit)
		fmt.Printf("P90 Daily Profit     : %.2f\n", s.P90DailyProfit)
		fmt.Printf("Best / Worst Day     : %d / %d\n", s.BestDay, s.WorstDay)
	}
	fmt.Printf("Units Sold           : %d\n", s.UnitsSold)
	fmt.Printf("Wall Time            : %v\n", wallTime)
}

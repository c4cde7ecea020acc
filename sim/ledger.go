package sim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyLedger is returned when an export is attempted before any daily
// record was collected. Callers report it and skip the export; it is not
// fatal.
var ErrEmptyLedger = errors.New("no ledger data collected")

// TotalLabel marks the synthetic terminal row summing all day records.
const TotalLabel = "Total"

// DayRecord is one ledger row: the economic outcome of a single simulated
// day. Profit is always Revenue - COGS - DeliveryCost.
type DayRecord struct {
	Day          int
	Revenue      float64
	COGS         float64
	DeliveryCost float64
	Profit       float64
	ProductsSold int
}

// Ledger is the append-only sequence of daily records. It is the
// externally observable output of a simulation run.
type Ledger struct {
	Days []DayRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Days: make([]DayRecord, 0)}
}

// Append records one day, rounding every monetary field to 2 decimals
// at entry, so downstream sums operate on the reported values.
func (l *Ledger) Append(rec DayRecord) {
	rec.Revenue = round2(rec.Revenue)
	rec.COGS = round2(rec.COGS)
	rec.DeliveryCost = round2(rec.DeliveryCost)
	rec.Profit = round2(rec.Profit)
	l.Days = append(l.Days, rec)
}

// Totals returns the synthetic terminal record summing every numeric
// field across all day records. Its Day field is meaningless; the export
// labels it with TotalLabel.
func (l *Ledger) Totals() DayRecord {
	var total DayRecord
	for _, d := range l.Days {
		total.Revenue += d.Revenue
		total.COGS += d.COGS
		total.DeliveryCost += d.DeliveryCost
		total.Profit += d.Profit
		total.ProductsSold += d.ProductsSold
	}
	total.Revenue = round2(total.Revenue)
	total.COGS = round2(total.COGS)
	total.DeliveryCost = round2(total.DeliveryCost)
	total.Profit = round2(total.Profit)
	return total
}

// TotalProfit returns the summed profit across all recorded days.
func (l *Ledger) TotalProfit() float64 {
	return l.Totals().Profit
}

// ExportCSV writes the ledger (day rows plus the terminal Total row) to
// path. If the target is unwritable it retries once against a
// timestamp-suffixed alternate path. Returns the path actually written.
func (l *Ledger) ExportCSV(path string) (string, error) {
	if len(l.Days) == 0 {
		return "", ErrEmptyLedger
	}

	f, err := os.Create(path)
	if err != nil {
		alt := timestampedPath(path)
		f, err = os.Create(alt)
		if err != nil {
			return "", fmt.Errorf("export ledger: %w", err)
		}
		path = alt
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"day", "revenue", "cogs", "delivery_cost", "profit", "products_sold"}); err != nil {
		return "", fmt.Errorf("export ledger: %w", err)
	}
	for _, d := range l.Days {
		if err := w.Write(csvRow(strconv.Itoa(d.Day), d)); err != nil {
			return "", fmt.Errorf("export ledger: %w", err)
		}
	}
	if err := w.Write(csvRow(TotalLabel, l.Totals())); err != nil {
		return "", fmt.Errorf("export ledger: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export ledger: %w", err)
	}
	return path, nil
}

func csvRow(label string, d DayRecord) []string {
	return []string{
		label,
		strconv.FormatFloat(d.Revenue, 'f', 2, 64),
		strconv.FormatFloat(d.COGS, 'f', 2, 64),
		strconv.FormatFloat(d.DeliveryCost, 'f', 2, 64),
		strconv.FormatFloat(d.Profit, 'f', 2, 64),
		strconv.Itoa(d.ProductsSold),
	}
}

// timestampedPath derives the fallback export path, e.g.
// daily_balance.csv -> daily_balance_20240131_154502.csv.
func timestampedPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102_150405"), ext)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

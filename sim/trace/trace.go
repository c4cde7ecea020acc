package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures daily discount decisions and stockout misses.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// DiscountRecord captures one discount decision of the daily pricing pass.
type DiscountRecord struct {
	Day         int
	Product     string
	StockLevel  int
	SalesLevel  int
	DiscountPct float64
	PriceBefore float64
	PriceAfter  float64
	Floored     bool // true when the margin floor overrode the discounted price
}

// StockoutRecord captures a customer who reached a checkout lane while the
// store had nothing left to sell.
type StockoutRecord struct {
	Day      int
	Customer int
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Level     TraceLevel
	Discounts []DiscountRecord
	Stockouts []StockoutRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:     level,
		Discounts: make([]DiscountRecord, 0),
		Stockouts: make([]StockoutRecord, 0),
	}
}

// Enabled reports whether records should be collected.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Level == TraceLevelDecisions
}

// RecordDiscount appends a discount decision record.
func (st *SimulationTrace) RecordDiscount(record DiscountRecord) {
	if !st.Enabled() {
		return
	}
	st.Discounts = append(st.Discounts, record)
}

// RecordStockout appends a stockout record.
func (st *SimulationTrace) RecordStockout(record StockoutRecord) {
	if !st.Enabled() {
		return
	}
	st.Stockouts = append(st.Stockouts, record)
}

package trace

import "testing"

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	if s.TotalDiscounts != 0 || s.StockoutCount != 0 {
		t.Errorf("nil trace summary: got %+v, want zero values", s)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	st := NewSimulationTrace(TraceLevelDecisions)
	st.RecordDiscount(DiscountRecord{Day: 1, Product: "fruits", DiscountPct: 10, Floored: false})
	st.RecordDiscount(DiscountRecord{Day: 1, Product: "sweets", DiscountPct: 20, Floored: true})
	st.RecordDiscount(DiscountRecord{Day: 2, Product: "fruits", DiscountPct: 6, Floored: false})
	st.RecordStockout(StockoutRecord{Day: 2, Customer: 4})

	s := Summarize(st)

	if s.TotalDiscounts != 3 {
		t.Errorf("TotalDiscounts: got %d, want 3", s.TotalDiscounts)
	}
	if s.MeanDiscountPct != 12 {
		t.Errorf("MeanDiscountPct: got %v, want 12", s.MeanDiscountPct)
	}
	if s.MaxDiscountPct != 20 {
		t.Errorf("MaxDiscountPct: got %v, want 20", s.MaxDiscountPct)
	}
	if s.FlooredCount != 1 {
		t.Errorf("FlooredCount: got %d, want 1", s.FlooredCount)
	}
	if s.StockoutCount != 1 {
		t.Errorf("StockoutCount: got %d, want 1", s.StockoutCount)
	}
	if s.ByProduct["fruits"] != 2 {
		t.Errorf("ByProduct[fruits]: got %d, want 2", s.ByProduct["fruits"])
	}
}

func TestRecording_DisabledLevels(t *testing.T) {
	st := NewSimulationTrace(TraceLevelNone)
	st.RecordDiscount(DiscountRecord{Day: 1})
	st.RecordStockout(StockoutRecord{Day: 1})

	if len(st.Discounts) != 0 || len(st.Stockouts) != 0 {
		t.Error("records collected with tracing disabled")
	}

	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must report disabled")
	}
	// Recording on a nil trace is a no-op, not a panic.
	nilTrace.RecordDiscount(DiscountRecord{})
	nilTrace.RecordStockout(StockoutRecord{})
}

func TestIsValidTraceLevel(t *testing.T) {
	for _, level := range []string{"none", "decisions", ""} {
		if !IsValidTraceLevel(level) {
			t.Errorf("IsValidTraceLevel(%q): got false, want true", level)
		}
	}
	if IsValidTraceLevel("verbose") {
		t.Error(`IsValidTraceLevel("verbose"): got true, want false`)
	}
}

package sim

import "testing"

// stubEvent is a minimal Event for heap-ordering tests.
type stubEvent struct {
	time     int64
	priority int
	label    string
}

func (e *stubEvent) Timestamp() int64      { return e.time }
func (e *stubEvent) Priority() int         { return e.priority }
func (e *stubEvent) Execute(_ *Simulation) {}

func TestEventHeap_OrdersByTimestamp(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(&stubEvent{time: 30, label: "c"})
	h.Schedule(&stubEvent{time: 10, label: "a"})
	h.Schedule(&stubEvent{time: 20, label: "b"})

	var got []string
	for h.Len() > 0 {
		got = append(got, h.PopNext().(*stubEvent).label)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order: got %v, want %v", got, want)
		}
	}
}

func TestEventHeap_SameTickOrdersByPriority(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(&stubEvent{time: 5, priority: priorityCheckoutFinish, label: "finish"})
	h.Schedule(&stubEvent{time: 5, priority: priorityDayStart, label: "day"})
	h.Schedule(&stubEvent{time: 5, priority: priorityCustomerArrival, label: "arrival"})

	var got []string
	for h.Len() > 0 {
		got = append(got, h.PopNext().(*stubEvent).label)
	}
	want := []string{"day", "arrival", "finish"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order: got %v, want %v", got, want)
		}
	}
}

func TestEventHeap_TiesBreakBySchedulingOrder(t *testing.T) {
	// Same timestamp, same priority: FIFO by Schedule call, so customer
	// arrivals keep their spawn order.
	h := NewEventHeap()
	for _, label := range []string{"first", "second", "third"} {
		h.Schedule(&stubEvent{time: 1, priority: priorityCustomerArrival, label: label})
	}

	var got []string
	for h.Len() > 0 {
		got = append(got, h.PopNext().(*stubEvent).label)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order: got %v, want %v", got, want)
		}
	}
}

func TestEventHeap_EmptyPops(t *testing.T) {
	h := NewEventHeap()
	if h.PopNext() != nil {
		t.Error("PopNext on empty heap: want nil")
	}
	if h.Peek() != nil {
		t.Error("Peek on empty heap: want nil")
	}
}

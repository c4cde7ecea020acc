package sim

import "testing"

func TestResource_GrantsImmediatelyWhileFree(t *testing.T) {
	r := NewResource(2)

	var grants []int64
	r.Request(5, func(at int64) { grants = append(grants, at) })
	r.Request(5, func(at int64) { grants = append(grants, at) })

	if len(grants) != 2 || grants[0] != 5 || grants[1] != 5 {
		t.Errorf("grants: got %v, want both at t=5", grants)
	}
	if r.InUse() != 2 || r.Waiting() != 0 {
		t.Errorf("state: inUse=%d waiting=%d, want 2/0", r.InUse(), r.Waiting())
	}
}

func TestResource_SecondRequestWaitsForRelease(t *testing.T) {
	// GIVEN capacity 1 and two simultaneous requests
	r := NewResource(1)

	var firstAt, secondAt int64 = -1, -1
	r.Request(0, func(at int64) { firstAt = at })
	r.Request(0, func(at int64) { secondAt = at })

	// THEN only the first is granted
	if firstAt != 0 {
		t.Fatalf("first grant: got %d, want 0", firstAt)
	}
	if secondAt != -1 {
		t.Fatalf("second grant fired before release, at %d", secondAt)
	}
	if r.Waiting() != 1 {
		t.Fatalf("waiting: got %d, want 1", r.Waiting())
	}

	// WHEN the first holder releases at t=7
	r.Release(7)

	// THEN the second customer's service starts exactly at the release time
	if secondAt != 7 {
		t.Errorf("second grant: got %d, want 7", secondAt)
	}
	if r.InUse() != 1 || r.Waiting() != 0 {
		t.Errorf("state after handoff: inUse=%d waiting=%d, want 1/0", r.InUse(), r.Waiting())
	}
}

func TestResource_GrantsAreFIFO(t *testing.T) {
	r := NewResource(1)

	var order []int
	r.Request(0, func(int64) { order = append(order, 0) })
	for i := 1; i <= 3; i++ {
		i := i
		r.Request(0, func(int64) { order = append(order, i) })
	}

	r.Release(1)
	r.Release(2)
	r.Release(3)

	want := []int{0, 1, 2, 3}
	for i, id := range order {
		if id != want[i] {
			t.Fatalf("grant order: got %v, want %v", order, want)
		}
	}
}

func TestResource_ReleaseWithoutWaitersFreesSlot(t *testing.T) {
	r := NewResource(1)
	r.Request(0, func(int64) {})
	r.Release(1)

	if r.InUse() != 0 {
		t.Errorf("inUse after release: got %d, want 0", r.InUse())
	}

	granted := false
	r.Request(2, func(int64) { granted = true })
	if !granted {
		t.Error("request after release should be granted immediately")
	}
}

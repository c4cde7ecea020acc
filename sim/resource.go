// Implements the checkout-lane resource: a counting semaphore with a FIFO
// queue of waiting customers. Grants are strictly in request order.

package sim

// GrantFunc is invoked when a waiting request is granted a slot. The
// argument is the simulated time of the grant.
type GrantFunc func(grantTime int64)

// Resource models a finite-capacity shared resource inside the
// single-threaded cooperative scheduler. Requests are granted immediately
// while free slots remain; otherwise they join a FIFO wait queue and are
// granted, one per release, in arrival order.
//
// State is only ever mutated from event Execute methods, so no locking is
// required.
type Resource struct {
	capacity int
	inUse    int
	waiters  []GrantFunc // FIFO queue of blocked requests
}

// NewResource creates a Resource with the given slot capacity.
// Capacity must be positive; configuration validation enforces this
// before a Simulation is constructed.
func NewResource(capacity int) *Resource {
	return &Resource{capacity: capacity}
}

// Request asks for a slot at time now. If a slot is free it is occupied
// and grant fires immediately (same tick); otherwise the request queues.
func (r *Resource) Request(now int64, grant GrantFunc) {
	if r.inUse < r.capacity {
		r.inUse++
		grant(now)
		return
	}
	r.waiters = append(r.waiters, grant)
}

// Release returns a slot at time now. If customers are waiting, the slot
// passes directly to the head of the queue and its grant fires at the
// release time; otherwise the slot becomes free.
func (r *Resource) Release(now int64) {
	if len(r.waiters) > 0 {
		next := r.waiters[0]
		r.waiters = r.waiters[1:]
		next(now)
		return
	}
	if r.inUse > 0 {
		r.inUse--
	}
}

// InUse returns the number of occupied slots.
func (r *Resource) InUse() int {
	return r.inUse
}

// Waiting returns the number of queued requests.
func (r *Resource) Waiting() int {
	return len(r.waiters)
}

// Capacity returns the total number of slots.
func (r *Resource) Capacity() int {
	return r.capacity
}

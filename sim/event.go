package sim

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in ticks), a Priority for same-tick ordering,
// and an Execute method that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Priority() int // 0=DayStart, 1=CustomerArrival, 2=CheckoutFinish
	Execute(*Simulation)
}

// Same-tick execution order. A day is opened before its customers arrive,
// and arrivals are handed to the checkout resource before any finish
// occurring at the same tick is processed.
const (
	priorityDayStart = iota
	priorityCustomerArrival
	priorityCheckoutFinish
)

// DayStartEvent opens one simulated day: suppliers produce, the store
// restocks and re-prices, and the day's customers are scheduled.
type DayStartEvent struct {
	time int64
	Day  int // 1-based day index
}

// Timestamp returns the scheduled time of the DayStartEvent.
func (e *DayStartEvent) Timestamp() int64 {
	return e.time
}

// Priority returns the same-tick ordering rank of the DayStartEvent.
func (e *DayStartEvent) Priority() int {
	return priorityDayStart
}

// Execute runs the day-open sequence.
func (e *DayStartEvent) Execute(sim *Simulation) {
	sim.startDay(e.Day, e.time)
}

// CustomerArrivalEvent represents one customer arriving and requesting a
// checkout lane. The customer blocks in the lane FIFO until granted.
type CustomerArrivalEvent struct {
	time     int64
	Day      int
	Customer int // customer index within the day, spawn order
}

// Timestamp returns the scheduled time of the CustomerArrivalEvent.
func (e *CustomerArrivalEvent) Timestamp() int64 {
	return e.time
}

// Priority returns the same-tick ordering rank of the CustomerArrivalEvent.
func (e *CustomerArrivalEvent) Priority() int {
	return priorityCustomerArrival
}

// Execute requests a checkout lane; service begins when the grant fires.
func (e *CustomerArrivalEvent) Execute(sim *Simulation) {
	sim.customerArrives(e.Day, e.Customer, e.time)
}

// CheckoutFinishEvent fires when a customer's service interval ends: the
// sale is attempted, the day's totals accrue, and the lane is released to
// the next waiting customer.
type CheckoutFinishEvent struct {
	time     int64
	Day      int
	Customer int
}

// Timestamp returns the scheduled time of the CheckoutFinishEvent.
func (e *CheckoutFinishEvent) Timestamp() int64 {
	return e.time
}

// Priority returns the same-tick ordering rank of the CheckoutFinishEvent.
func (e *CheckoutFinishEvent) Priority() int {
	return priorityCheckoutFinish
}

// Execute completes the checkout.
func (e *CheckoutFinishEvent) Execute(sim *Simulation) {
	sim.customerFinishes(e.Day, e.Customer, e.time)
}

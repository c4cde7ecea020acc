// Package sim provides the core discrete-event simulation engine for the
// grocery store economics model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (DayStart, CustomerArrival, CheckoutFinish)
//   - simulation.go: The event loop, the day sequence, and ledger aggregation
//   - store.go: Stock, pricing, discounting, and sale selection
//
// # Architecture
//
// One Simulation owns a tick clock, a deterministic event heap, a store
// with its suppliers, and the daily ledger. Scheduling is single-threaded
// cooperative: events execute one at a time in (timestamp, priority,
// schedule order), so economic state is mutated race-free by construction.
// Checkout capacity is the only contended resource and is arbitrated by the
// Resource primitive (FIFO grants), never by store logic directly.
//
// Sub-packages:
//   - sim/fuzzy/: rule-based discount inference (membership functions, centroid defuzzification)
//   - sim/swarm/: particle-swarm search over initial stock allocations
//   - sim/trace/: decision trace recording
//
// All randomness flows from a single seed through PartitionedRNG, which
// derives an isolated stream per subsystem; identical seeds and
// configuration reproduce ledgers bit for bit.
package sim

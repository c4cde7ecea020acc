// sim/simulation.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/grocery-sim/grocery-sim/sim/trace"
)

// Simulation is the core object that holds simulation time, system state,
// and the event loop. It drives the store, its suppliers and the checkout
// resource through N sequential simulated days and aggregates the daily
// ledger.
//
// Scheduling is single-threaded cooperative: exactly one event executes at
// a time, so all economic state is mutated race-free by construction.
type Simulation struct {
	Clock int64
	// EventQueue holds all simulator events: day starts, customer
	// arrivals, checkout completions.
	EventQueue *EventHeap

	Store     *Store
	Suppliers []*Supplier
	Ledger    *Ledger
	RNG       *PartitionedRNG
	Trace     *trace.SimulationTrace

	cfg RunConfig
	day dayState
}

// dayState accumulates the in-flight day's totals until its last customer
// finishes.
type dayState struct {
	day          int
	revenue      float64
	cogs         float64
	deliveryCost float64
	productsSold int
	remaining    int // customers that have not finished checkout yet
}

// NewSimulation constructs a fresh simulation from validated
// configuration. All randomness derives from the given seed.
func NewSimulation(runCfg RunConfig, storeCfg StoreConfig, tr *trace.SimulationTrace) (*Simulation, error) {
	if err := runCfg.Validate(); err != nil {
		return nil, err
	}
	if err := storeCfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(runCfg.Seed))
	store := NewStore(storeCfg, rng.ForSubsystem(SubsystemStore))
	store.Trace = tr

	suppliers := make([]*Supplier, runCfg.NumSuppliers)
	for i := range suppliers {
		suppliers[i] = NewSupplier(i, rng.ForSubsystem(SubsystemSupplier))
	}

	return &Simulation{
		Clock:      0,
		EventQueue: NewEventHeap(),
		Store:      store,
		Suppliers:  suppliers,
		Ledger:     NewLedger(),
		RNG:        rng,
		Trace:      tr,
		cfg:        runCfg,
	}, nil
}

// SeedInitialStock produces quantities[i] units at supplier i and
// transfers them all to the store, before the first simulated day.
// Non-positive quantities leave the supplier empty.
func (s *Simulation) SeedInitialStock(quantities []int) error {
	if len(quantities) != len(s.Suppliers) {
		return fmt.Errorf("initial stock: got %d quantities for %d suppliers", len(quantities), len(s.Suppliers))
	}
	for i, qty := range quantities {
		if qty <= 0 {
			continue
		}
		s.Suppliers[i].Produce(qty)
		s.Store.AddStock(s.Suppliers[i], qty)
	}
	return nil
}

// Run executes the event loop until no event remains. Day 1 opens at
// tick 0; each subsequent day opens one simulated day after the previous
// day's last checkout completed.
func (s *Simulation) Run() {
	s.EventQueue.Schedule(&DayStartEvent{time: 0, Day: 1})
	for s.EventQueue.Len() > 0 {
		ev := s.EventQueue.PopNext()
		s.Clock = ev.Timestamp()
		ev.Execute(s)
	}
}

// startDay runs the day-open sequence, in strict order: supplier restock,
// discount pass, customer arrivals.
func (s *Simulation) startDay(day int, now int64) {
	logrus.Debugf("<< day %d opens at %d ticks", day, now)

	// Inbound replenishment: each supplier produces a batch, then the
	// store buys part of it. Shortfalls are logged inside AddStock and
	// the day proceeds with whatever arrived.
	for _, supplier := range s.Suppliers {
		supplier.Produce(s.cfg.RestockBatch)
		s.Store.AddStock(supplier, s.cfg.StorePurchase)
	}

	// Daily fuzzy discounts, applied before any sale.
	s.Store.ApplyDiscounts(day)

	customers := s.cfg.CustomersMin
	if span := s.cfg.CustomersMax - s.cfg.CustomersMin; span > 0 {
		customers += s.customerRNG().Intn(span + 1)
	}
	s.day = dayState{day: day, remaining: customers}

	if customers == 0 {
		s.closeDay(now)
		return
	}
	for i := 0; i < customers; i++ {
		s.EventQueue.Schedule(&CustomerArrivalEvent{time: now, Day: day, Customer: i})
	}
}

// customerArrives queues the customer on the checkout resource. Arrivals
// are granted lanes strictly in arrival order; service begins at grant
// time and lasts a uniform draw in [ServiceMinDays, ServiceMaxDays].
func (s *Simulation) customerArrives(day, customer int, now int64) {
	s.Store.Checkouts.Request(now, func(grantTime int64) {
		span := s.cfg.ServiceMaxDays - s.cfg.ServiceMinDays
		serviceDays := s.cfg.ServiceMinDays + s.customerRNG().Float64()*span
		service := int64(serviceDays * float64(TicksPerDay))
		s.EventQueue.Schedule(&CheckoutFinishEvent{
			time:     grantTime + service,
			Day:      day,
			Customer: customer,
		})
	})
}

// customerFinishes completes one checkout: attempt a sale, accrue the
// day's totals, release the lane to the next waiting customer, and close
// the day when this was its last customer.
func (s *Simulation) customerFinishes(day, customer int, now int64) {
	product, sold := s.Store.SellOneProduct()
	if sold {
		s.day.revenue += s.Store.Price(product)
		s.day.cogs += s.Store.Cost(product)
		s.day.productsSold++

		span := s.cfg.DistanceMaxKm - s.cfg.DistanceMinKm
		distance := s.cfg.DistanceMinKm + s.customerRNG().Float64()*span
		s.day.deliveryCost += s.Store.DeliveryCost(distance)
	} else {
		s.Trace.RecordStockout(trace.StockoutRecord{Day: day, Customer: customer})
	}

	// The lane is released whether or not a sale happened.
	s.Store.Checkouts.Release(now)

	s.day.remaining--
	if s.day.remaining == 0 {
		s.closeDay(now)
	}
}

// closeDay records the ledger entry, resets the sales counters, and
// schedules the next day one simulated day later.
func (s *Simulation) closeDay(now int64) {
	profit := s.day.revenue - (s.day.cogs + s.day.deliveryCost)
	s.Ledger.Append(DayRecord{
		Day:          s.day.day,
		Revenue:      s.day.revenue,
		COGS:         s.day.cogs,
		DeliveryCost: s.day.deliveryCost,
		Profit:       profit,
		ProductsSold: s.day.productsSold,
	})
	s.Store.ResetSalesCounters()

	logrus.Infof("day %d: revenue=%.2f cogs=%.2f delivery=%.2f profit=%.2f sold=%d",
		s.day.day, s.day.revenue, s.day.cogs, s.day.deliveryCost, profit, s.day.productsSold)

	if s.day.day < s.cfg.Days {
		s.EventQueue.Schedule(&DayStartEvent{time: now + TicksPerDay, Day: s.day.day + 1})
	}
}

func (s *Simulation) customerRNG() *rand.Rand {
	return s.RNG.ForSubsystem(SubsystemCustomer)
}

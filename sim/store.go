package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/grocery-sim/grocery-sim/sim/fuzzy"
	"github.com/grocery-sim/grocery-sim/sim/trace"
)

// Store holds stock levels, sale prices, supplier unit costs (COGS), sales
// counters and the checkout-lane resource, and composes the discount
// inference engine to retarget prices daily.
//
// Invariants: Stock[p] >= 0 always; after ApplyDiscounts, Prices[p] >=
// Costs[p] * PriceFloorMargin for every product with a known cost.
type Store struct {
	cfg StoreConfig

	Stock      map[Product]int     // units in stock by product
	Prices     map[Product]float64 // sale price by product (store -> consumer)
	Costs      map[Product]float64 // supplier unit cost (COGS) by product
	SalesCount map[Product]int     // sales by product since last reset

	// Checkouts is the finite checkout-lane capacity customers contend for.
	// It is arbitrated by the event loop, never mutated by store logic.
	Checkouts *Resource

	engine *fuzzy.DiscountEngine
	rng    *rand.Rand

	// Trace, when non-nil and enabled, collects discount decisions.
	Trace *trace.SimulationTrace
}

// NewStore creates a Store with empty stock. Cost and price maps are
// populated lazily on first restock of each product.
func NewStore(cfg StoreConfig, rng *rand.Rand) *Store {
	return &Store{
		cfg:        cfg,
		Stock:      make(map[Product]int),
		Prices:     make(map[Product]float64),
		Costs:      make(map[Product]float64),
		SalesCount: make(map[Product]int),
		Checkouts:  NewResource(cfg.Checkouts),
		engine:     fuzzy.NewDiscountEngine(fuzzy.DefaultShapes()),
		rng:        rng,
	}
}

// AddStock requests quantity units from the supplier and shelves whatever
// arrives. On first sight of a product the supplier's unit cost is
// recorded and an initial sale price of cost * U[markupMin, markupMax] is
// set. A supplier shortfall is recoverable: it is logged and the store
// proceeds with zero units received.
//
// Returns the number of units actually shelved.
func (g *Store) AddStock(supplier *Supplier, quantity int) int {
	products, err := supplier.Supply(quantity)
	if err != nil {
		logrus.Warnf("restock: %v", err)
		return 0
	}
	for _, p := range products {
		g.Stock[p]++
		if _, ok := g.Costs[p]; !ok {
			g.Costs[p] = supplier.UnitCost(p)
		}
		if _, ok := g.Prices[p]; !ok {
			markup := g.cfg.MarkupMin + g.rng.Float64()*(g.cfg.MarkupMax-g.cfg.MarkupMin)
			g.Prices[p] = g.Costs[p] * markup
		}
	}
	return len(products)
}

// ApplyDiscounts queries the inference engine for every product with
// positive stock and an existing price, and multiplies the price by
// (1 - discount/100), never letting it fall below cost * PriceFloorMargin.
// Invoked exactly once per simulated day, before that day's sales; day is
// only used for decision tracing.
//
// Once the floor is hit, re-applying is a no-op for that product.
func (g *Store) ApplyDiscounts(day int) {
	for _, p := range ProductTypes {
		stockUnits := g.Stock[p]
		price, priced := g.Prices[p]
		if stockUnits <= 0 || !priced {
			continue
		}
		salesUnits := g.SalesCount[p]
		discount := g.engine.Discount(float64(stockUnits), float64(salesUnits))
		newPrice := price * (1.0 - discount/100.0)
		floor := g.Costs[p] * g.cfg.PriceFloorMargin
		floored := newPrice < floor
		if floored {
			newPrice = floor
		}
		g.Prices[p] = newPrice

		g.Trace.RecordDiscount(trace.DiscountRecord{
			Day:         day,
			Product:     string(p),
			StockLevel:  stockUnits,
			SalesLevel:  salesUnits,
			DiscountPct: discount,
			PriceBefore: price,
			PriceAfter:  newPrice,
			Floored:     floored,
		})
	}
}

// SellOneProduct sells exactly one unit, chosen among in-stock products
// with probability proportional to the demand weights. Products absent
// from the weight table get the configured default weight so they remain
// selectable. Returns false when nothing is in stock (no sale, not a
// failure).
func (g *Store) SellOneProduct() (Product, bool) {
	available := make([]Product, 0, len(ProductTypes))
	weights := make([]float64, 0, len(ProductTypes))
	total := 0.0
	for _, p := range ProductTypes {
		if g.Stock[p] <= 0 {
			continue
		}
		w, ok := g.cfg.DemandWeights[p]
		if !ok {
			w = g.cfg.DefaultDemandWeight
		}
		available = append(available, p)
		weights = append(weights, w)
		total += w
	}
	if len(available) == 0 {
		return "", false
	}
	if total == 0 {
		// All listed weights are zero: fall back to a uniform choice.
		for i := range weights {
			weights[i] = 1.0
		}
		total = float64(len(weights))
	}

	r := g.rng.Float64() * total
	chosen := available[len(available)-1]
	for i, p := range available {
		r -= weights[i]
		if r < 0 {
			chosen = p
			break
		}
	}

	g.Stock[chosen]--
	g.SalesCount[chosen]++
	return chosen, true
}

// ResetSalesCounters zeroes the sales-since-reset counters. Invoked once
// at the day boundary, after ledger accounting.
func (g *Store) ResetSalesCounters() {
	g.SalesCount = make(map[Product]int)
}

// DeliveryCost maps a delivery distance to the banded flat fee.
func (g *Store) DeliveryCost(distanceKm float64) float64 {
	for _, band := range g.cfg.DeliveryBands {
		if distanceKm < band.MaxKm {
			return band.Fee
		}
	}
	return g.cfg.DeliveryBeyondFee
}

// Price returns the current sale price for product (0 if never priced).
func (g *Store) Price(p Product) float64 {
	return g.Prices[p]
}

// Cost returns the recorded unit cost for product (0 if unknown).
func (g *Store) Cost(p Product) float64 {
	return g.Costs[p]
}

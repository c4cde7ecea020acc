package sim

import (
	"fmt"
	"math/rand"
)

// InsufficientInventoryError reports a supply request exceeding what the
// supplier currently holds. It is recoverable: callers proceed with the
// empty result and the supplier's inventory is left untouched.
type InsufficientInventoryError struct {
	SupplierID int
	Requested  int
	Available  int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("supplier %d: not enough products to supply: requested %d, only %d available",
		e.SupplierID, e.Requested, e.Available)
}

// Supplier owns a bounded inventory of product units and the latest unit
// cost (COGS) per product. The sale price is set by the store, not here.
type Supplier struct {
	ID int

	inventory []Product           // held units, supplied most-recently-added first
	costs     map[Product]float64 // latest unit cost per product
	rng       *rand.Rand
}

// NewSupplier creates an empty supplier drawing its production randomness
// from rng.
func NewSupplier(id int, rng *rand.Rand) *Supplier {
	return &Supplier{
		ID:        id,
		inventory: make([]Product, 0),
		costs:     make(map[Product]float64),
		rng:       rng,
	}
}

// Produce adds quantity units to the supplier's inventory. A negative
// quantity means "unspecified" and draws a uniform count in [1,10]; an
// explicit zero produces nothing and consumes no randomness. Each unit is
// assigned a uniformly random product type, and the recorded unit cost for
// that type is overwritten with a fresh U[1,5] draw. The latest draw
// always wins; costs are not smoothed across restocks.
func (s *Supplier) Produce(quantity int) {
	if quantity < 0 {
		quantity = s.rng.Intn(10) + 1
	}
	for i := 0; i < quantity; i++ {
		p := ProductTypes[s.rng.Intn(len(ProductTypes))]
		s.inventory = append(s.inventory, p)
		s.costs[p] = 1.0 + s.rng.Float64()*4.0
	}
}

// Supply removes and returns exactly quantity units, most-recently-added
// first. If fewer than quantity units are held it returns an empty slice
// and an InsufficientInventoryError, leaving the inventory unchanged.
func (s *Supplier) Supply(quantity int) ([]Product, error) {
	if len(s.inventory) < quantity {
		return nil, &InsufficientInventoryError{
			SupplierID: s.ID,
			Requested:  quantity,
			Available:  len(s.inventory),
		}
	}
	supplied := make([]Product, 0, quantity)
	for i := 0; i < quantity; i++ {
		n := len(s.inventory)
		supplied = append(supplied, s.inventory[n-1])
		s.inventory = s.inventory[:n-1]
	}
	return supplied, nil
}

// UnitCost returns the recorded unit cost for product, or 0 if the
// supplier never produced it.
func (s *Supplier) UnitCost(product Product) float64 {
	return s.costs[product]
}

// Held returns the number of units currently in inventory.
func (s *Supplier) Held() int {
	return len(s.inventory)
}

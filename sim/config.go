package sim

import "fmt"

// TicksPerDay is the tick length of one simulated day. Fractional
// durations (service times) are scaled by this constant, mirroring the
// convention of keeping the clock in integer ticks.
const TicksPerDay int64 = 1_000_000

// DeliveryBand maps delivery distances up to MaxKm (exclusive) to a flat fee.
type DeliveryBand struct {
	MaxKm float64 `yaml:"max_km"`
	Fee   float64 `yaml:"fee"`
}

// StoreConfig groups the store's economic parameters. The reference values
// are constants of the model, not hidden literals, so they live here and
// can be overridden from the YAML config file.
type StoreConfig struct {
	// Checkouts is the number of checkout lanes (finite service capacity).
	Checkouts int `yaml:"checkouts"`

	// DemandWeights are per-product selection weights. They need not sum
	// to 1; they are normalized at sampling time over in-stock products.
	DemandWeights map[Product]float64 `yaml:"demand_weights"`

	// DefaultDemandWeight applies to any in-stock product absent from
	// DemandWeights, keeping it selectable.
	DefaultDemandWeight float64 `yaml:"default_demand_weight"`

	// MarkupMin/MarkupMax bound the uniform initial markup applied over
	// the supplier cost the first time a product gets a price.
	MarkupMin float64 `yaml:"markup_min"`
	MarkupMax float64 `yaml:"markup_max"`

	// PriceFloorMargin keeps discounted prices at or above
	// cost * PriceFloorMargin (5% margin over cost by default).
	PriceFloorMargin float64 `yaml:"price_floor_margin"`

	// DeliveryBands are flat delivery fees by distance, ascending in
	// MaxKm. DeliveryBeyondFee applies past the last band.
	DeliveryBands     []DeliveryBand `yaml:"delivery_bands"`
	DeliveryBeyondFee float64        `yaml:"delivery_beyond_fee"`
}

// DefaultStoreConfig returns the reference store parameters.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Checkouts: 5,
		DemandWeights: map[Product]float64{
			Proteins:      0.30,
			Carbohydrates: 0.25,
			Fruits:        0.20,
			Vegetables:    0.15,
			Sweets:        0.10,
		},
		DefaultDemandWeight: 0.01,
		MarkupMin:           1.2,
		MarkupMax:           1.5,
		PriceFloorMargin:    1.05,
		DeliveryBands: []DeliveryBand{
			{MaxKm: 10, Fee: 5.0},
			{MaxKm: 20, Fee: 10.0},
			{MaxKm: 30, Fee: 15.0},
		},
		DeliveryBeyondFee: 20.0,
	}
}

// Validate fails fast on malformed store configuration.
func (c *StoreConfig) Validate() error {
	if c.Checkouts <= 0 {
		return fmt.Errorf("store config: checkouts must be positive, got %d", c.Checkouts)
	}
	for p, w := range c.DemandWeights {
		if w < 0 {
			return fmt.Errorf("store config: demand weight for %s must be non-negative, got %v", p, w)
		}
	}
	if c.DefaultDemandWeight <= 0 {
		return fmt.Errorf("store config: default demand weight must be positive, got %v", c.DefaultDemandWeight)
	}
	if c.MarkupMin < 1.0 || c.MarkupMax < c.MarkupMin {
		return fmt.Errorf("store config: markup range [%v, %v] invalid", c.MarkupMin, c.MarkupMax)
	}
	if c.PriceFloorMargin < 1.0 {
		return fmt.Errorf("store config: price floor margin must be >= 1.0, got %v", c.PriceFloorMargin)
	}
	prev := 0.0
	for i, b := range c.DeliveryBands {
		if b.MaxKm <= prev {
			return fmt.Errorf("store config: delivery band %d: max_km %v not ascending", i, b.MaxKm)
		}
		if b.Fee < 0 {
			return fmt.Errorf("store config: delivery band %d: negative fee %v", i, b.Fee)
		}
		prev = b.MaxKm
	}
	if c.DeliveryBeyondFee < 0 {
		return fmt.Errorf("store config: delivery beyond fee must be non-negative, got %v", c.DeliveryBeyondFee)
	}
	return nil
}

// RunConfig groups the parameters of one simulation run.
type RunConfig struct {
	Days         int   `yaml:"days"`          // simulated horizon in days
	NumSuppliers int   `yaml:"num_suppliers"` // suppliers serving the store
	Seed         int64 `yaml:"seed"`          // master seed for all randomness

	// RestockBatch units are produced by every supplier each day;
	// the store then buys StorePurchase of them per supplier.
	RestockBatch  int `yaml:"restock_batch"`
	StorePurchase int `yaml:"store_purchase"`

	// Daily customer count is uniform in [CustomersMin, CustomersMax].
	CustomersMin int `yaml:"customers_min"`
	CustomersMax int `yaml:"customers_max"`

	// Checkout service duration is uniform in [ServiceMinDays, ServiceMaxDays]
	// simulated days.
	ServiceMinDays float64 `yaml:"service_min_days"`
	ServiceMaxDays float64 `yaml:"service_max_days"`

	// Delivery distance per sale is uniform in [DistanceMinKm, DistanceMaxKm].
	DistanceMinKm float64 `yaml:"distance_min_km"`
	DistanceMaxKm float64 `yaml:"distance_max_km"`
}

// DefaultRunConfig returns the reference run parameters for the full
// production horizon.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Days:           30,
		NumSuppliers:   5,
		Seed:           42,
		RestockBatch:   10,
		StorePurchase:  5,
		CustomersMin:   8,
		CustomersMax:   20,
		ServiceMinDays: 0.5,
		ServiceMaxDays: 2.0,
		DistanceMinKm:  1.0,
		DistanceMaxKm:  35.0,
	}
}

// Validate fails fast on malformed run configuration.
func (c *RunConfig) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("run config: days must be positive, got %d", c.Days)
	}
	if c.NumSuppliers <= 0 {
		return fmt.Errorf("run config: num_suppliers must be positive, got %d", c.NumSuppliers)
	}
	if c.RestockBatch <= 0 {
		return fmt.Errorf("run config: restock_batch must be positive, got %d", c.RestockBatch)
	}
	if c.StorePurchase < 0 {
		return fmt.Errorf("run config: store_purchase must be non-negative, got %d", c.StorePurchase)
	}
	if c.CustomersMin < 0 || c.CustomersMax < c.CustomersMin {
		return fmt.Errorf("run config: customer range [%d, %d] invalid", c.CustomersMin, c.CustomersMax)
	}
	if c.ServiceMinDays <= 0 || c.ServiceMaxDays < c.ServiceMinDays {
		return fmt.Errorf("run config: service range [%v, %v] invalid", c.ServiceMinDays, c.ServiceMaxDays)
	}
	if c.DistanceMinKm < 0 || c.DistanceMaxKm < c.DistanceMinKm {
		return fmt.Errorf("run config: distance range [%v, %v] invalid", c.DistanceMinKm, c.DistanceMaxKm)
	}
	return nil
}

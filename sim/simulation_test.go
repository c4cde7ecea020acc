package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortRunConfig(seed int64) RunConfig {
	cfg := DefaultRunConfig()
	cfg.Days = 5
	cfg.Seed = seed
	return cfg
}

func TestSimulation_SameSeedIdenticalLedgers(t *testing.T) {
	// Two simulations with identical configuration and seed must produce
	// byte-identical ledgers.
	build := func() *Simulation {
		s, err := NewSimulation(shortRunConfig(42), DefaultStoreConfig(), nil)
		require.NoError(t, err)
		require.NoError(t, s.SeedInitialStock([]int{20, 20, 20, 20, 20}))
		return s
	}

	s1 := build()
	s2 := build()
	s1.Run()
	s2.Run()

	assert.Equal(t, s1.Ledger.Days, s2.Ledger.Days)
	assert.Equal(t, s1.Clock, s2.Clock)
}

func TestSimulation_DifferentSeedsDiverge(t *testing.T) {
	s1, err := NewSimulation(shortRunConfig(1), DefaultStoreConfig(), nil)
	require.NoError(t, err)
	s2, err := NewSimulation(shortRunConfig(2), DefaultStoreConfig(), nil)
	require.NoError(t, err)

	s1.Run()
	s2.Run()

	assert.NotEqual(t, s1.Ledger.Days, s2.Ledger.Days)
}

func TestSimulation_LedgerHasOneRecordPerDay(t *testing.T) {
	cfg := shortRunConfig(7)
	s, err := NewSimulation(cfg, DefaultStoreConfig(), nil)
	require.NoError(t, err)
	s.Run()

	require.Len(t, s.Ledger.Days, cfg.Days)
	for i, d := range s.Ledger.Days {
		assert.Equal(t, i+1, d.Day)
	}
}

func TestSimulation_ProfitConservation(t *testing.T) {
	s, err := NewSimulation(shortRunConfig(11), DefaultStoreConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, s.SeedInitialStock([]int{30, 30, 30, 30, 30}))
	s.Run()

	for _, d := range s.Ledger.Days {
		// Fields are rounded independently at append, so the identity
		// holds to rounding precision.
		assert.InDelta(t, d.Revenue-d.COGS-d.DeliveryCost, d.Profit, 0.021,
			"day %d: profit must equal revenue - cogs - delivery", d.Day)
		assert.GreaterOrEqual(t, d.ProductsSold, 0)
	}
}

func TestSimulation_InvariantsAfterRun(t *testing.T) {
	s, err := NewSimulation(shortRunConfig(13), DefaultStoreConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, s.SeedInitialStock([]int{10, 10, 10, 10, 10}))
	s.Run()

	for _, p := range ProductTypes {
		assert.GreaterOrEqual(t, s.Store.Stock[p], 0, "stock of %s", p)
		if cost, known := s.Store.Costs[p]; known {
			if price, priced := s.Store.Prices[p]; priced {
				assert.GreaterOrEqual(t, price, cost*1.05-1e-9,
					"price of %s below the margin floor", p)
			}
		}
	}
}

func TestSimulation_DaysAreSequential(t *testing.T) {
	// Each day opens one simulated day after the previous day's last
	// checkout, so the final clock is at least (days-1) full days plus
	// the last day's service tail.
	cfg := shortRunConfig(17)
	s, err := NewSimulation(cfg, DefaultStoreConfig(), nil)
	require.NoError(t, err)
	s.Run()

	assert.GreaterOrEqual(t, s.Clock, int64(cfg.Days-1)*TicksPerDay)
}

func TestSimulation_SeedInitialStockZeroLeavesSuppliersEmpty(t *testing.T) {
	// An explicit zero (or negative) quantity seeds nothing: no random
	// batch, no stock transferred.
	s, err := NewSimulation(shortRunConfig(3), DefaultStoreConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, s.SeedInitialStock([]int{0, 0, -2, 0, 0}))
	for i, supplier := range s.Suppliers {
		assert.Equal(t, 0, supplier.Held(), "supplier %d", i)
	}
	for _, p := range ProductTypes {
		assert.Equal(t, 0, s.Store.Stock[p], "stock of %s", p)
	}
}

func TestSimulation_SeedInitialStockWrongLength(t *testing.T) {
	s, err := NewSimulation(shortRunConfig(1), DefaultStoreConfig(), nil)
	require.NoError(t, err)

	assert.Error(t, s.SeedInitialStock([]int{5, 5}))
}

func TestSimulation_RejectsInvalidConfig(t *testing.T) {
	bad := DefaultRunConfig()
	bad.Days = 0
	_, err := NewSimulation(bad, DefaultStoreConfig(), nil)
	assert.Error(t, err)

	badStore := DefaultStoreConfig()
	badStore.Checkouts = -1
	_, err = NewSimulation(DefaultRunConfig(), badStore, nil)
	assert.Error(t, err)

	badRun := DefaultRunConfig()
	badRun.NumSuppliers = 0
	_, err = NewSimulation(badRun, DefaultStoreConfig(), nil)
	assert.Error(t, err)
}

func TestObjective_DeterministicPerCandidate(t *testing.T) {
	// The evaluation seed is pinned, so the same candidate scores the
	// same fitness on every call; evaluations share no state.
	cfg := DefaultEvaluationConfig()
	cfg.Run.Days = 3
	f := Objective(cfg)

	candidate := []float64{12.7, 30.2, 5.0, 49.9, 8.1}
	first := f(candidate)
	second := f(candidate)
	assert.Equal(t, first, second)
}

func TestObjective_TruncatesAndClampsQuantities(t *testing.T) {
	cfg := DefaultEvaluationConfig()
	cfg.Run.Days = 2
	f := Objective(cfg)

	// Negative components are clamped to zero, fractional ones truncated;
	// the evaluation must complete and return a finite fitness.
	fitness := f([]float64{-3.5, 0.9, 10.2, 20.0, 30.7})
	assert.False(t, math.IsNaN(fitness) || math.IsInf(fitness, 0), "fitness must be finite")
}

package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// EvaluationConfig groups the configuration of one optimizer objective
// evaluation: a short simulated horizon scored by negative total profit.
type EvaluationConfig struct {
	Run   RunConfig
	Store StoreConfig
}

// DefaultEvaluationConfig returns the reference evaluation setup: a
// 10-day horizon with 3 checkout lanes and a pinned evaluation seed, so
// the search itself is reproducible end to end.
func DefaultEvaluationConfig() EvaluationConfig {
	run := DefaultRunConfig()
	run.Days = 10
	run.Seed = 999
	store := DefaultStoreConfig()
	store.Checkouts = 3
	return EvaluationConfig{Run: run, Store: store}
}

// Objective returns the fitness function minimized by the swarm search.
// Each call builds fresh suppliers and a fresh store, seeds supplier i
// with int(position[i]) produced units transferred to the store, runs the
// short horizon, and returns the negated terminal profit. Evaluations
// share no mutable state, so they could run in parallel without changing
// results.
func Objective(cfg EvaluationConfig) func(position []float64) float64 {
	return func(position []float64) float64 {
		quantities := make([]int, len(position))
		for i, x := range position {
			q := int(x)
			if q < 0 {
				q = 0
			}
			quantities[i] = q
		}

		run := cfg.Run
		run.NumSuppliers = len(position)
		s, err := NewSimulation(run, cfg.Store, nil)
		if err != nil {
			// An unbuildable candidate scores as maximally unfit.
			logrus.Warnf("objective: %v", err)
			return math.Inf(1)
		}
		if err := s.SeedInitialStock(quantities); err != nil {
			logrus.Warnf("objective: %v", err)
			return math.Inf(1)
		}
		s.Run()

		return -s.Ledger.TotalProfit()
	}
}

// Package swarm implements a particle-swarm minimizer over box-bounded
// continuous domains. The objective is treated as a black box: no gradient
// information is used, and noisy objectives are acceptable.
package swarm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Config groups the search hyperparameters.
type Config struct {
	SwarmSize  int     // particles per iteration
	Iterations int     // iteration budget
	Omega      float64 // inertia weight
	PhiP       float64 // cognitive (particle-best) acceleration
	PhiG       float64 // social (swarm-best) acceleration
}

// DefaultConfig returns the reference search configuration.
func DefaultConfig() Config {
	return Config{
		SwarmSize:  8,
		Iterations: 4,
		Omega:      0.5,
		PhiP:       0.5,
		PhiG:       0.5,
	}
}

// Validate fails fast on malformed search configuration.
func (c *Config) Validate() error {
	if c.SwarmSize <= 0 {
		return fmt.Errorf("swarm config: swarm size must be positive, got %d", c.SwarmSize)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("swarm config: iterations must be positive, got %d", c.Iterations)
	}
	if c.Omega < 0 || c.PhiP < 0 || c.PhiG < 0 {
		return fmt.Errorf("swarm config: omega/phip/phig must be non-negative")
	}
	return nil
}

// Result is the best position found and its fitness.
type Result struct {
	Position    []float64
	Fitness     float64
	Evaluations int
}

// Minimize searches the box [lower, upper] for the position minimizing
// objective. Particles are evaluated sequentially; all randomness comes
// from rng, so a fixed seed reproduces the search exactly.
func Minimize(objective func([]float64) float64, lower, upper []float64, cfg Config, rng *rand.Rand) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if len(lower) == 0 || len(lower) != len(upper) {
		return Result{}, fmt.Errorf("swarm: bounds must be non-empty and of equal length, got %d/%d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] >= upper[i] {
			return Result{}, fmt.Errorf("swarm: lower bound %v not below upper bound %v at dimension %d", lower[i], upper[i], i)
		}
	}

	dim := len(lower)
	span := make([]float64, dim)
	floats.SubTo(span, upper, lower)

	positions := make([][]float64, cfg.SwarmSize)
	velocities := make([][]float64, cfg.SwarmSize)
	bestPositions := make([][]float64, cfg.SwarmSize)
	bestFitness := make([]float64, cfg.SwarmSize)

	result := Result{
		Position: make([]float64, dim),
		Fitness:  math.Inf(1),
	}

	// Initialization: positions uniform within bounds, velocities uniform
	// in [-span, span].
	for i := 0; i < cfg.SwarmSize; i++ {
		positions[i] = make([]float64, dim)
		velocities[i] = make([]float64, dim)
		for d := 0; d < dim; d++ {
			positions[i][d] = lower[d] + rng.Float64()*span[d]
			velocities[i][d] = -span[d] + 2*rng.Float64()*span[d]
		}
		bestPositions[i] = make([]float64, dim)
		copy(bestPositions[i], positions[i])

		bestFitness[i] = objective(positions[i])
		result.Evaluations++
		if bestFitness[i] < result.Fitness {
			result.Fitness = bestFitness[i]
			copy(result.Position, positions[i])
		}
	}

	for it := 1; it <= cfg.Iterations; it++ {
		for i := 0; i < cfg.SwarmSize; i++ {
			x, v := positions[i], velocities[i]
			floats.Scale(cfg.Omega, v)
			for d := 0; d < dim; d++ {
				rp := rng.Float64()
				rg := rng.Float64()
				v[d] += cfg.PhiP*rp*(bestPositions[i][d]-x[d]) +
					cfg.PhiG*rg*(result.Position[d]-x[d])
			}
			floats.Add(x, v)
			for d := 0; d < dim; d++ {
				if x[d] < lower[d] {
					x[d] = lower[d]
				} else if x[d] > upper[d] {
					x[d] = upper[d]
				}
			}

			fitness := objective(x)
			result.Evaluations++
			if fitness < bestFitness[i] {
				bestFitness[i] = fitness
				copy(bestPositions[i], x)
				if fitness < result.Fitness {
					result.Fitness = fitness
					copy(result.Position, x)
				}
			}
		}
		logrus.Infof("swarm: iteration %d/%d, best fitness %.4f", it, cfg.Iterations, result.Fitness)
	}

	return result, nil
}

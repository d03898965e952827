package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// Mayfly adapts the external mayfly library to the Optimizer interface.
type Mayfly struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a mayfly optimizer. The library requires popSize >= 20.
func NewMayfly(maxIters, popSize int, seed int64) *Mayfly {
	return &Mayfly{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the mayfly optimization. The library takes scalar bounds,
// so the first dimension's bounds are applied uniformly; all callers in
// this repository use symmetric boxes.
func (m *Mayfly) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error) {
	config := mayfly.NewDefaultConfig()

	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize

	config.LowerBound = lower[0]
	config.UpperBound = upper[0]

	// Own the random source so runs are reproducible per seed.
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return nil, 0, fmt.Errorf("mayfly optimization: %w", err)
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost, nil
}

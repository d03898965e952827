package opt

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/labsopt/internal/labs"
)

// RelaxedSeeder generates candidate sequences by searching the continuous
// relaxation of the LABS energy: positions live in the box [-1, 1]^N, each
// position is quantized to its element signs before evaluation, and the
// best quantized vector becomes the seed. The seeds it produces are meant
// to be polished through labs.RefineSeed.
type RelaxedSeeder struct {
	optimizer Optimizer
}

// NewRelaxedSeeder creates a seeder backed by a mayfly run with the given
// iteration budget, population size and random seed.
func NewRelaxedSeeder(iters, pop int, seed int64) *RelaxedSeeder {
	return &RelaxedSeeder{
		optimizer: NewMayfly(iters, pop, seed),
	}
}

// Generate produces one candidate sequence of length n.
func (rs *RelaxedSeeder) Generate(n int) (labs.Sequence, error) {
	if n < 1 {
		return nil, labs.ErrInvalidLength
	}

	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := 0; i < n; i++ {
		lower[i] = -1
		upper[i] = 1
	}

	eval := func(x []float64) float64 {
		// Quantized vectors are always in the ±1 domain, so the
		// validation cannot fail here.
		cost, _ := labs.Energy(quantize(x))
		return float64(cost)
	}

	position, _, err := rs.optimizer.Run(eval, lower, upper, n)
	if err != nil {
		return nil, fmt.Errorf("relaxed seed generation: %w", err)
	}

	return quantize(position), nil
}

// quantize maps a continuous position to its sign vector; zero rounds up.
func quantize(x []float64) labs.Sequence {
	seq := make(labs.Sequence, len(x))
	for i, v := range x {
		if v < 0 {
			seq[i] = -1
		} else {
			seq[i] = 1
		}
	}
	return seq
}

// SeededSearch runs restarts independent relaxation seeds through the
// deterministic climber and returns the best refined result, keeping the
// earlier incumbent on cost ties. Trial t uses seed+t for its mayfly run,
// so the whole search is reproducible from the base seed. Cancellation is
// checked between trials; progress, if non-nil, is invoked after each.
func SeededSearch(ctx context.Context, n, restarts, iters, pop int, seed int64, progress func(labs.Trial)) (labs.Result, error) {
	if n < 1 {
		return labs.Result{}, labs.ErrInvalidLength
	}
	if restarts < 1 {
		return labs.Result{}, labs.ErrInvalidRestarts
	}

	slog.Info("Starting relaxation-seeded search", "n", n, "restarts", restarts, "iters", iters, "pop", pop)

	best := labs.Result{Cost: math.MaxInt}
	for r := 0; r < restarts; r++ {
		select {
		case <-ctx.Done():
			return labs.Result{}, ctx.Err()
		default:
		}

		seeder := NewRelaxedSeeder(iters, pop, seed+int64(r))
		candidate, err := seeder.Generate(n)
		if err != nil {
			return labs.Result{}, err
		}

		res, err := labs.RefineSeed(candidate)
		if err != nil {
			return labs.Result{}, err
		}

		if res.Cost < best.Cost {
			best = res
		}

		slog.Debug("Seeded restart converged", "trial", r, "cost", res.Cost, "best", best.Cost)

		if progress != nil {
			progress(labs.Trial{Index: r, Cost: res.Cost, Best: best.Cost})
		}
	}

	slog.Info("Relaxation-seeded search complete", "n", n, "best_cost", best.Cost)
	return best, nil
}

package labs

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
)

// Trial describes one completed restart: its index, the converged cost of
// that restart, and the best cost seen so far. Trials are ephemeral and
// exist only for progress reporting.
type Trial struct {
	Index int
	Cost  int
	Best  int
}

// Search runs random-restart hill climbing: restarts independent uniform
// starting sequences of length n are drawn from rng, each is refined to a
// local optimum, and the best result is returned. On equal cost the
// earlier-found incumbent is kept, so results are reproducible for a
// given random source.
func Search(n, restarts int, rng *rand.Rand) (Result, error) {
	return SearchContext(context.Background(), n, restarts, rng, nil)
}

// SearchContext is Search with cooperative cancellation and an optional
// progress callback. Cancellation is checked between trials only, so the
// semantics of each individual trial are identical to Search. If progress
// is non-nil it is invoked after every completed trial.
func SearchContext(ctx context.Context, n, restarts int, rng *rand.Rand, progress func(Trial)) (Result, error) {
	if n < 1 {
		return Result{}, ErrInvalidLength
	}
	if restarts < 1 {
		return Result{}, ErrInvalidRestarts
	}
	if rng == nil {
		return Result{}, ErrNilRand
	}

	slog.Info("Starting random-restart search", "n", n, "restarts", restarts)

	best := Result{Cost: math.MaxInt}
	for r := 0; r < restarts; r++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		start, err := Random(n, rng)
		if err != nil {
			return Result{}, err
		}

		res, err := Refine(start)
		if err != nil {
			return Result{}, err
		}

		// Strict < keeps the first-found incumbent on ties.
		if res.Cost < best.Cost {
			best = res
		}

		slog.Debug("Restart converged", "trial", r, "cost", res.Cost, "best", best.Cost)

		if progress != nil {
			progress(Trial{Index: r, Cost: res.Cost, Best: best.Cost})
		}
	}

	slog.Info("Random-restart search complete", "n", n, "restarts", restarts, "best_cost", best.Cost)
	return best, nil
}

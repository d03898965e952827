package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/labsopt/internal/labs"
	"github.com/cwbudde/labsopt/internal/opt"
)

var (
	searchN        int
	searchRestarts int
	searchSeed     int64
	searchStrategy string
	searchIters    int
	searchPop      int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a random-restart search",
	Long: `Searches for a low-energy sequence of the given length. The random
strategy refines uniform random starts; the relaxed strategy refines seeds
produced by a continuous-relaxation optimizer.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchN, "n", 30, "Sequence length")
	searchCmd.Flags().IntVar(&searchRestarts, "restarts", 10, "Number of restarts")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 42, "Random seed")
	searchCmd.Flags().StringVar(&searchStrategy, "strategy", "random", "Start strategy: random, relaxed")
	searchCmd.Flags().IntVar(&searchIters, "iters", 100, "Relaxation iterations (relaxed strategy)")
	searchCmd.Flags().IntVar(&searchPop, "pop", 30, "Relaxation population size (relaxed strategy)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	slog.Info("Starting search", "strategy", searchStrategy, "n", searchN, "restarts", searchRestarts)

	start := time.Now()
	var result labs.Result
	var err error

	switch searchStrategy {
	case "random":
		rng := rand.New(rand.NewSource(searchSeed))
		result, err = labs.SearchContext(cmd.Context(), searchN, searchRestarts, rng, nil)
	case "relaxed":
		result, err = opt.SeededSearch(cmd.Context(), searchN, searchRestarts, searchIters, searchPop, searchSeed, nil)
	default:
		return fmt.Errorf("unknown strategy: %s", searchStrategy)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	elapsed := time.Since(start)
	tps := float64(searchRestarts) / elapsed.Seconds()

	slog.Info("Search complete",
		"elapsed", elapsed,
		"best_cost", result.Cost,
		"trials_per_second", fmt.Sprintf("%.1f", tps),
	)

	fmt.Printf("%s\ncost: %d (%d restarts, %.1f trials/sec)\n", result.Seq, result.Cost, searchRestarts, tps)

	return nil
}

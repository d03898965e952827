package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/labsopt/internal/experiment"
)

var experimentCfg = experiment.DefaultConfig()

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the baseline comparison experiment",
	Long: `Compares random sampling against random-restart hill climbing over
the same sequence length and prints summary statistics, a rank table and
text histograms of both cost distributions.`,
	RunE: runExperiment,
}

func init() {
	experimentCmd.Flags().IntVar(&experimentCfg.N, "n", experimentCfg.N, "Sequence length")
	experimentCmd.Flags().IntVar(&experimentCfg.Trials, "trials", experimentCfg.Trials, "Trials per group")
	experimentCmd.Flags().IntVar(&experimentCfg.Restarts, "restarts", experimentCfg.Restarts, "Restarts per optimizer trial")
	experimentCmd.Flags().Int64Var(&experimentCfg.Seed, "seed", experimentCfg.Seed, "Random seed")

	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	out, err := experiment.Run(experimentCfg)
	if err != nil {
		return fmt.Errorf("experiment failed: %w", err)
	}

	return out.WriteReport(os.Stdout)
}

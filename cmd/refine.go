package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/labsopt/internal/labs"
)

var refineSeq string

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine a seed sequence with deterministic hill climbing",
	Long: `Polishes a caller-provided ±1 sequence to the nearest local optimum.
The seed is given as a symbol string ("+--+...") or a comma separated
list of ±1 integers.`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().StringVar(&refineSeq, "seq", "", "Seed sequence (required)")

	refineCmd.MarkFlagRequired("seq")
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	seed, err := labs.Parse(refineSeq)
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	seedCost, err := labs.Energy(seed)
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	result, err := labs.RefineSeed(seed)
	if err != nil {
		return fmt.Errorf("refinement failed: %w", err)
	}

	fmt.Printf("%s\ncost: %d -> %d\n", result.Seq, seedCost, result.Cost)

	return nil
}

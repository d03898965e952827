package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/labsopt/internal/labs"
)

var evalSeq string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the energy of a sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := labs.Parse(evalSeq)
		if err != nil {
			return fmt.Errorf("invalid sequence: %w", err)
		}

		cost, err := labs.Energy(seq)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}

		fmt.Printf("cost: %d\n", cost)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalSeq, "seq", "", "Sequence to evaluate (required)")

	evalCmd.MarkFlagRequired("seq")
	rootCmd.AddCommand(evalCmd)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/spf13/cobra"
)

func genmockCommand() *cobra.Command {
	var rows int
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "genmock [--rows n] [--seed s] [--out file]",
		Short: "Generates a synthetic historical dataset CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows <= 0 {
				return fmt.Errorf("rows must be positive, got %d", rows)
			}
			records := dataset.Synthesize(rows, seed)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := dataset.WriteCSV(w, records); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}
			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", rows, out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 500, "number of rows to generate")
	cmd.Flags().Int64VarP(&seed, "seed", "x", 42, "random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

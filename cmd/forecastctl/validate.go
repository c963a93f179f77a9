package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/categorical"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/spf13/cobra"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func validateCommand() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "validate --data file",
		Short: "Reports cleaning statistics and checks a historical dataset is trainable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := dataset.LoadFile(dataFile)
			if err != nil {
				return err
			}
			return validate(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "historical dataset CSV")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func validate(w io.Writer, table dataset.Table) error {
	fmt.Fprintln(w, "=== Historical Dataset Validation ===")
	fmt.Fprintf(w, "rows read:       %d\n", table.Stats.RowsRead)
	fmt.Fprintf(w, "rows missing:    %d\n", table.Stats.RowsMissing)
	fmt.Fprintf(w, "rows duplicate:  %d\n", table.Stats.RowsDuplicate)
	fmt.Fprintf(w, "rows usable:     %d\n", table.Len())
	fmt.Fprintln(w)

	dirs := categorical.Fit(table.WindGustDirs())
	labels := categorical.Fit(table.RainLabels())

	fmt.Fprintln(w, "WindGustDir codes:")
	for code, class := range dirs.Classes() {
		fmt.Fprintf(w, "  %2d %s\n", code, class)
	}
	var unseen []string
	for _, point := range domain.CompassPoints() {
		if dirs.Encode(point) == categorical.Unseen {
			unseen = append(unseen, point)
		}
	}
	if len(unseen) > 0 {
		fmt.Fprintf(w, "  live readings from %v will encode as %d\n", unseen, categorical.Unseen)
	}
	fmt.Fprintln(w, "RainTomorrow codes:")
	for code, class := range labels.Classes() {
		fmt.Fprintf(w, "  %2d %s\n", code, class)
	}
	fmt.Fprintln(w)

	phases := []*phase{
		checkLabels(labels),
		checkDirections(dirs),
		checkSeries(table),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Fprintf(w, "PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(phases))
	}
	return nil
}

func checkLabels(labels *categorical.CodeMap) *phase {
	p := &phase{name: "rain labels"}
	if labels.Len() < 2 {
		p.errorf("need 2 RainTomorrow classes to train, found %v", labels.Classes())
	}
	for _, class := range labels.Classes() {
		if class != "Yes" && class != "No" {
			p.errorf("unexpected RainTomorrow value %q", class)
		}
	}
	return p
}

func checkDirections(dirs *categorical.CodeMap) *phase {
	p := &phase{name: "wind directions"}
	points := domain.CompassPoints()
	for _, class := range dirs.Classes() {
		if !slices.Contains(points, class) {
			p.errorf("WindGustDir %q is not a 16-point compass name; live readings can never match it", class)
		}
	}
	return p
}

func checkSeries(table dataset.Table) *phase {
	p := &phase{name: "one-step series"}
	for _, col := range []string{domain.ColTemp, domain.ColHumidity} {
		pairs, err := dataset.Pairs(table, col)
		if err != nil {
			p.errorf("%s: %v", col, err)
			continue
		}
		if len(pairs) == 0 {
			p.errorf("%s: need at least 2 rows to build one-step pairs", col)
		}
	}
	return p
}

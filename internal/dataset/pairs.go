package dataset

import "fmt"

// Pair is one autoregressive training example: a value and its successor.
type Pair struct {
	Current float64
	Next    float64
}

// Pairs builds the one-step pairs (v[i], v[i+1]) of a continuous column in
// row order. Row order is assumed to be chronological.
func Pairs(t Table, column string) ([]Pair, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, fmt.Errorf("build pairs: %w", err)
	}
	return PairsOf(values), nil
}

// PairsOf builds one-step pairs over values.
func PairsOf(values []float64) []Pair {
	if len(values) < 2 {
		return nil
	}
	pairs := make([]Pair, len(values)-1)
	for i := range pairs {
		pairs[i] = Pair{Current: values[i], Next: values[i+1]}
	}
	return pairs
}

package forest

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MeanSquaredError returns the mean of (want[i]-got[i])^2. Empty or
// mismatched inputs yield NaN.
func MeanSquaredError(want, got []float64) float64 {
	if len(want) == 0 || len(want) != len(got) {
		return math.NaN()
	}
	d := floats.Distance(want, got, 2)
	return d * d / float64(len(want))
}

// Accuracy returns the fraction of positions where want and got agree.
func Accuracy(want, got []int) float64 {
	if len(want) == 0 || len(want) != len(got) {
		return math.NaN()
	}
	hits := 0
	for i := range want {
		if want[i] == got[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}

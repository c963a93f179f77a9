package model

import "fmt"

// StepPredictor predicts the next value of a series from the current one.
type StepPredictor interface {
	Predict(value float64) (float64, error)
}

// Forecast feeds each prediction back as the next input, starting from seed,
// and returns horizon values. The seed is not part of the output. Errors
// compound across steps and are left uncorrected.
func Forecast(p StepPredictor, seed float64, horizon int) ([]float64, error) {
	if horizon <= 0 {
		return []float64{}, nil
	}
	out := make([]float64, horizon)
	current := seed
	for i := range out {
		next, err := p.Predict(current)
		if err != nil {
			return nil, fmt.Errorf("forecast step %d: %w", i+1, err)
		}
		out[i] = next
		current = next
	}
	return out, nil
}

package model

import (
	"fmt"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/forest"
	"gonum.org/v1/gonum/mat"
)

// OneStepModel predicts the value that follows its input in a series.
type OneStepModel struct {
	forest *forest.Regressor
}

// TrainOneStep fits a regressor on every pair, with no held-out split.
func TrainOneStep(pairs []dataset.Pair) (*OneStepModel, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: one-step regressor needs at least one pair", domain.ErrModelTraining)
	}

	X := mat.NewDense(len(pairs), 1, nil)
	y := make([]float64, len(pairs))
	for i, p := range pairs {
		X.Set(i, 0, p.Current)
		y[i] = p.Next
	}

	reg := forest.NewRegressor(forest.Config{Trees: Trees, Seed: Seed})
	if err := reg.Fit(X, y); err != nil {
		return nil, fmt.Errorf("%w: fit one-step regressor: %v", domain.ErrModelTraining, err)
	}
	return &OneStepModel{forest: reg}, nil
}

// TrainOneStepColumn builds the pairs of a continuous column and fits on them.
func TrainOneStepColumn(t dataset.Table, column string) (*OneStepModel, error) {
	pairs, err := dataset.Pairs(t, column)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelTraining, err)
	}
	m, err := TrainOneStep(pairs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", column, err)
	}
	return m, nil
}

// Predict returns the next value after value.
func (m *OneStepModel) Predict(value float64) (float64, error) {
	next, err := m.forest.Predict([]float64{value})
	if err != nil {
		return 0, fmt.Errorf("%w: predict next value: %v", domain.ErrModelTraining, err)
	}
	return next, nil
}

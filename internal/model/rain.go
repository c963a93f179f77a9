// Package model trains the rain classifier and the one-step forecasters and
// runs recursive multi-step forecasts.
package model

import (
	"fmt"
	"strings"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/categorical"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/forest"
	"gonum.org/v1/gonum/mat"
)

const (
	// Seed fixes every split and ensemble for reproducibility.
	Seed = 42
	// Trees is the ensemble size of each forest.
	Trees = 100
	// TestFraction is the share of rows held out when scoring the rain classifier.
	TestFraction = 0.2
)

// Encoders holds the code maps fitted on one training table. Live readings
// must be encoded with the WindGustDir map fitted here.
type Encoders struct {
	WindGustDir  *categorical.CodeMap
	RainTomorrow *categorical.CodeMap
}

// FitEncoders fits one code map per categorical column of t.
func FitEncoders(t dataset.Table) Encoders {
	return Encoders{
		WindGustDir:  categorical.Fit(t.WindGustDirs()),
		RainTomorrow: categorical.Fit(t.RainLabels()),
	}
}

// FeatureTable is the encoded classifier input. It is not modified after
// construction.
type FeatureTable struct {
	X      *mat.Dense
	Labels []int
}

// Rows returns the number of rows.
func (f FeatureTable) Rows() int {
	return len(f.Labels)
}

// BuildFeatureTable encodes t in FeatureColumns order.
func BuildFeatureTable(t dataset.Table, enc Encoders) FeatureTable {
	if t.Len() == 0 {
		return FeatureTable{}
	}
	X := mat.NewDense(t.Len(), len(domain.FeatureColumns), nil)
	labels := make([]int, t.Len())
	for i, r := range t.Records {
		X.SetRow(i, []float64{
			r.MinTemp,
			r.MaxTemp,
			float64(enc.WindGustDir.Encode(r.WindGustDir)),
			r.WindGustSpeed,
			r.Humidity,
			r.Pressure,
			r.Temp,
		})
		labels[i] = enc.RainTomorrow.Encode(r.RainTomorrow)
	}
	return FeatureTable{X: X, Labels: labels}
}

// RainModel predicts the encoded RainTomorrow label of a feature row.
type RainModel struct {
	forest *forest.Classifier
	labels *categorical.CodeMap
}

// TrainRain splits ft 80/20, fits the classifier on the training part and
// scores it on the held-out part.
func TrainRain(ft FeatureTable, labels *categorical.CodeMap) (*RainModel, domain.RainEvaluation, error) {
	var eval domain.RainEvaluation
	if ft.X == nil || ft.Rows() < 2 {
		return nil, eval, fmt.Errorf("%w: rain classifier needs at least 2 rows, got %d", domain.ErrModelTraining, ft.Rows())
	}
	if labels.Len() < 2 {
		return nil, eval, fmt.Errorf("%w: rain classifier needs 2 label classes, got %v", domain.ErrModelTraining, labels.Classes())
	}

	trainIdx, testIdx, err := forest.TrainTestSplit(ft.Rows(), TestFraction, Seed)
	if err != nil {
		return nil, eval, fmt.Errorf("%w: split: %v", domain.ErrModelTraining, err)
	}

	trainX, trainY := subset(ft, trainIdx)
	clf := forest.NewClassifier(forest.Config{Trees: Trees, Seed: Seed})
	if err := clf.Fit(trainX, trainY); err != nil {
		return nil, eval, fmt.Errorf("%w: fit rain classifier: %v", domain.ErrModelTraining, err)
	}
	m := &RainModel{forest: clf, labels: labels}

	want := make([]float64, len(testIdx))
	got := make([]float64, len(testIdx))
	wantCodes := make([]int, len(testIdx))
	gotCodes := make([]int, len(testIdx))
	for i, idx := range testIdx {
		code, err := clf.Predict(ft.X.RawRowView(idx))
		if err != nil {
			return nil, eval, fmt.Errorf("%w: score rain classifier: %v", domain.ErrModelTraining, err)
		}
		wantCodes[i], gotCodes[i] = ft.Labels[idx], code
		want[i], got[i] = float64(ft.Labels[idx]), float64(code)
	}

	eval = domain.RainEvaluation{
		MeanSquaredError: forest.MeanSquaredError(want, got),
		Accuracy:         forest.Accuracy(wantCodes, gotCodes),
		TrainRows:        len(trainIdx),
		TestRows:         len(testIdx),
	}
	return m, eval, nil
}

// Predict returns the encoded label for one feature row.
func (m *RainModel) Predict(features []float64) (int, error) {
	code, err := m.forest.Predict(features)
	if err != nil {
		return 0, fmt.Errorf("%w: predict rain: %v", domain.ErrModelTraining, err)
	}
	return code, nil
}

// PredictRain reports whether the predicted label means rain.
func (m *RainModel) PredictRain(features []float64) (bool, error) {
	code, err := m.Predict(features)
	if err != nil {
		return false, err
	}
	label, _ := m.labels.Decode(code)
	return IsRainLabel(label), nil
}

// IsRainLabel reports whether a RainTomorrow value denotes rain.
func IsRainLabel(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// LiveFeatures builds the classifier row for a live reading. The reading
// carries a single temperature, so it stands in for MinTemp, MaxTemp and Temp.
func LiveFeatures(r domain.LiveReading, windDirCode int) []float64 {
	return []float64{
		r.Temperature,
		r.Temperature,
		float64(windDirCode),
		r.WindSpeed,
		r.Humidity,
		r.Pressure,
		r.Temperature,
	}
}

func subset(ft FeatureTable, idx []int) (*mat.Dense, []int) {
	_, cols := ft.X.Dims()
	X := mat.NewDense(len(idx), cols, nil)
	y := make([]int, len(idx))
	for i, src := range idx {
		X.SetRow(i, ft.X.RawRowView(src))
		y[i] = ft.Labels[src]
	}
	return X, y
}

package domain

import "time"

// ForecastHorizon is the number of steps projected per continuous feature.
const ForecastHorizon = 5

// ForecastPoint pairs a projected value with its time label.
type ForecastPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// RainEvaluation reports the held-out scores of a rain classifier fit.
// MeanSquaredError is computed over encoded labels; Accuracy is reported
// next to it because MSE on class codes is a regression metric.
type RainEvaluation struct {
	MeanSquaredError float64 `json:"mean_squared_error"`
	Accuracy         float64 `json:"accuracy"`
	TrainRows        int     `json:"train_rows"`
	TestRows         int     `json:"test_rows"`
}

// PredictionResult is the complete output of one forecast run.
type PredictionResult struct {
	Location       string          `json:"location"`
	Current        LiveReading     `json:"current"`
	RainTomorrow   bool            `json:"rain_tomorrow"`
	WindDirection  string          `json:"wind_direction"`
	WindDirCode    int             `json:"wind_direction_code"`
	Temperature    []ForecastPoint `json:"temperature"`
	Humidity       []ForecastPoint `json:"humidity"`
	RainEvaluation RainEvaluation  `json:"rain_evaluation"`
	HistoricalRows int             `json:"historical_rows"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

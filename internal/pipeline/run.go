package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/model"
)

// Pipeline stage names reported to Options.Observe.
const (
	StageRainClassifier      = "rain_classifier"
	StageTemperatureForecast = "temperature_forecast"
	StageHumidityForecast    = "humidity_forecast"
)

// Options tunes a single RunForecast call. The zero value forecasts
// domain.ForecastHorizon steps labelled from the package clock in UTC.
type Options struct {
	// Horizon is the number of projected steps; 0 means domain.ForecastHorizon.
	Horizon int

	// TimeLabels overrides the computed hourly labels. It must hold at
	// least Horizon entries.
	TimeLabels []string

	// Now and Location drive the computed labels when TimeLabels is empty.
	Now      time.Time
	Location *time.Location

	// Observe, when set, receives the duration of each stage.
	Observe func(stage string, d time.Duration)
}

func (o Options) horizon() int {
	if o.Horizon <= 0 {
		return domain.ForecastHorizon
	}
	return o.Horizon
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return domain.Now()
	}
	return o.Now
}

func (o Options) observe(stage string, start time.Time) {
	if o.Observe != nil {
		o.Observe(stage, time.Since(start))
	}
}

// RunForecast trains every model on table and projects reading forward. It
// performs no I/O. Either the result is complete or an error is returned.
func RunForecast(reading domain.LiveReading, table dataset.Table, opts Options) (domain.PredictionResult, error) {
	if err := validateReading(reading); err != nil {
		return domain.PredictionResult{}, err
	}
	if table.Len() == 0 {
		return domain.PredictionResult{}, fmt.Errorf("%w: historical table is empty", domain.ErrDataQuality)
	}

	horizon := opts.horizon()
	now := opts.now()
	labels := opts.TimeLabels
	if len(labels) == 0 {
		labels = domain.HourlyLabels(now, opts.Location, horizon)
	}
	if len(labels) < horizon {
		return domain.PredictionResult{}, fmt.Errorf("%w: %d time labels for a %d step horizon",
			domain.ErrInputValidation, len(labels), horizon)
	}

	start := time.Now()
	enc := model.FitEncoders(table)
	rain, eval, err := model.TrainRain(model.BuildFeatureTable(table, enc), enc.RainTomorrow)
	if err != nil {
		return domain.PredictionResult{}, err
	}

	direction, err := domain.CompassBucket(reading.WindDegree)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	dirCode := enc.WindGustDir.Encode(direction)

	rainTomorrow, err := rain.PredictRain(model.LiveFeatures(reading, dirCode))
	if err != nil {
		return domain.PredictionResult{}, err
	}
	opts.observe(StageRainClassifier, start)

	start = time.Now()
	temps, err := forecastColumn(table, domain.ColTemp, reading.Temperature, horizon)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	opts.observe(StageTemperatureForecast, start)

	start = time.Now()
	humidity, err := forecastColumn(table, domain.ColHumidity, reading.Humidity, horizon)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	opts.observe(StageHumidityForecast, start)

	return domain.PredictionResult{
		Location:       reading.City,
		Current:        reading,
		RainTomorrow:   rainTomorrow,
		WindDirection:  direction,
		WindDirCode:    dirCode,
		Temperature:    points(labels, temps),
		Humidity:       points(labels, humidity),
		RainEvaluation: eval,
		HistoricalRows: table.Len(),
		GeneratedAt:    now.UTC(),
	}, nil
}

func forecastColumn(table dataset.Table, column string, seed float64, horizon int) ([]float64, error) {
	m, err := model.TrainOneStepColumn(table, column)
	if err != nil {
		return nil, err
	}
	values, err := model.Forecast(m, seed, horizon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", column, err)
	}
	return values, nil
}

func points(labels []string, values []float64) []domain.ForecastPoint {
	out := make([]domain.ForecastPoint, len(values))
	for i, v := range values {
		out[i] = domain.ForecastPoint{Time: labels[i], Value: v}
	}
	return out
}

func validateReading(r domain.LiveReading) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"temperature", r.Temperature},
		{"humidity", r.Humidity},
		{"pressure", r.Pressure},
		{"wind_speed", r.WindSpeed},
		{"wind_degree", r.WindDegree},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: reading field %s is not finite", domain.ErrUpstreamData, f.name)
		}
	}
	return nil
}

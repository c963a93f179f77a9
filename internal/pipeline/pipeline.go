package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
)

// TableSource supplies the historical table for each forecast.
type TableSource interface {
	LoadTable(ctx context.Context) (dataset.Table, error)
	CheckReadiness(ctx context.Context) error
}

// ResultPublisher emits a finished prediction downstream.
type ResultPublisher interface {
	Publish(ctx context.Context, result domain.PredictionResult) error
}

// Service serves forecasts for a queried city: it fetches the live reading,
// loads the historical table, retrains and runs RunForecast.
type Service struct {
	readings  domain.ReadingProvider
	tables    TableSource
	publisher ResultPublisher
	location  *time.Location
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. publisher may be nil to disable publishing.
func New(readings domain.ReadingProvider, tables TableSource, publisher ResultPublisher, location *time.Location, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		readings:  readings,
		tables:    tables,
		publisher: publisher,
		location:  location,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the historical source can be read.
func (s *Service) CheckReadiness(ctx context.Context) error {
	return s.tables.CheckReadiness(ctx)
}

// Forecast runs the full pipeline for city. Publishing failures are logged
// and counted but do not fail the call.
func (s *Service) Forecast(ctx context.Context, city string) (domain.PredictionResult, error) {
	result, err := s.forecast(ctx, city)
	if err != nil {
		kind := domain.ErrorKind(err)
		s.metrics.ForecastRequests.WithLabelValues(kind).Inc()
		s.logger.Warn("forecast failed", "city", city, "kind", kind, "error", err)
		return domain.PredictionResult{}, err
	}
	s.metrics.ForecastRequests.WithLabelValues("ok").Inc()
	s.publish(ctx, result)
	return result, nil
}

func (s *Service) forecast(ctx context.Context, city string) (domain.PredictionResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.PredictionResult{}, fmt.Errorf("%w: city is required", domain.ErrInputValidation)
	}

	start := time.Now()
	reading, err := s.readings.CurrentReading(ctx, city)
	if err != nil {
		if !domain.IsUpstream(err) {
			err = fmt.Errorf("%w: %v", domain.ErrUpstreamData, err)
		}
		return domain.PredictionResult{}, err
	}
	s.observe("fetch_reading", time.Since(start))
	if reading.City == "" {
		reading.City = city
	}

	start = time.Now()
	table, err := s.tables.LoadTable(ctx)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	s.observe("load_dataset", time.Since(start))
	s.metrics.HistoricalRows.Set(float64(table.Len()))
	s.logger.Debug("historical table loaded",
		"rows", table.Len(),
		"rows_read", table.Stats.RowsRead,
		"rows_missing", table.Stats.RowsMissing,
		"rows_duplicate", table.Stats.RowsDuplicate,
	)

	result, err := RunForecast(reading, table, Options{
		Location: s.location,
		Observe:  s.observe,
	})
	if err != nil {
		return domain.PredictionResult{}, err
	}

	s.metrics.RainModelMSE.Set(result.RainEvaluation.MeanSquaredError)
	s.metrics.RainModelAccuracy.Set(result.RainEvaluation.Accuracy)
	s.logger.Info("forecast complete",
		"city", result.Location,
		"rain_tomorrow", result.RainTomorrow,
		"wind_direction", result.WindDirection,
		"rain_mse", result.RainEvaluation.MeanSquaredError,
		"rain_accuracy", result.RainEvaluation.Accuracy,
	)
	return result, nil
}

func (s *Service) publish(ctx context.Context, result domain.PredictionResult) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, result); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Error("publish prediction failed", "city", result.Location, "error", err)
		return
	}
	s.metrics.PredictionsPublished.Inc()
}

func (s *Service) observe(stage string, d time.Duration) {
	s.metrics.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

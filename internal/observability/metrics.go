package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_forecast"

// Metrics holds the Prometheus counters, histograms, and gauges for the forecast service.
type Metrics struct {
	ForecastRequests *prometheus.CounterVec   // labels: outcome={ok,input,upstream,data,direction,model,internal}
	StageDuration    *prometheus.HistogramVec // labels: stage
	HistoricalRows   prometheus.Gauge

	// Rain classifier evaluation from the most recent fit.
	RainModelMSE      prometheus.Gauge
	RainModelAccuracy prometheus.Gauge

	// Live reading provider metrics.
	UpstreamRequests *prometheus.CounterVec // labels: outcome={success,error}
	UpstreamDuration prometheus.Histogram
	ReadingCache     *prometheus.CounterVec // labels: backend={memory,redis}, result={hit,miss}

	// Prediction event publishing.
	PredictionsPublished prometheus.Counter
	PublishErrors        prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ForecastRequests,
		m.StageDuration,
		m.HistoricalRows,
		m.RainModelMSE,
		m.RainModelAccuracy,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.ReadingCache,
		m.PredictionsPublished,
		m.PublishErrors,
	)
	return m
}

// NewUnregisteredMetrics creates Metrics that are not exported anywhere, for
// one-shot tools that have no /metrics endpoint.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Forecast requests by outcome.",
		}, []string{"outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each forecast pipeline stage.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"stage"}),
		HistoricalRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "historical_rows",
			Help:      "Usable rows in the historical dataset after cleaning.",
		}),
		RainModelMSE: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rain_model_mse",
			Help:      "Held-out mean squared error of the latest rain classifier fit, over encoded labels.",
		}),
		RainModelAccuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rain_model_accuracy",
			Help:      "Held-out accuracy of the latest rain classifier fit.",
		}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Weatherstack requests by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Weatherstack request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ReadingCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reading_cache_total",
			Help:      "Live reading cache lookups by backend and result.",
		}, []string{"backend", "result"}),
		PredictionsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_published_total",
			Help:      "Prediction events written to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Prediction events that failed to publish.",
		}),
	}
}

package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Forecaster runs the forecast pipeline for a city.
type Forecaster interface {
	Forecast(ctx context.Context, city string) (domain.PredictionResult, error)
}

// Server exposes the forecast endpoint plus health, readiness, and metrics.
type Server struct {
	httpServer *http.Server
	forecaster Forecaster
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /forecast, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, forecaster Forecaster, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
			// Every forecast retrains its models inline.
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		forecaster: forecaster,
		logger:     logger,
	}

	mux.HandleFunc("GET /forecast", s.handleForecast)
	mux.HandleFunc("POST /forecast", s.handleForecast)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type forecastRequest struct {
	City string `json:"city"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromRequest(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.forecaster.Forecast(r.Context(), city)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// cityFromRequest reads the city from the query string, a form body, or a
// JSON body. Validation of the value itself is left to the forecaster.
func cityFromRequest(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		return r.URL.Query().Get("city"), nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req forecastRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
			return "", fmt.Errorf("%w: decode body: %v", domain.ErrInputValidation, err)
		}
		return req.City, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("%w: parse form: %v", domain.ErrInputValidation, err)
	}
	return r.FormValue("city"), nil
}

func writeError(w http.ResponseWriter, err error) {
	kind := domain.ErrorKind(err)
	writeJSON(w, statusFor(kind), errorResponse{Error: err.Error(), Kind: kind})
}

// statusFor keeps upstream failures (502) distinct from pipeline failures (500).
func statusFor(kind string) int {
	switch kind {
	case domain.KindInput:
		return http.StatusBadRequest
	case domain.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

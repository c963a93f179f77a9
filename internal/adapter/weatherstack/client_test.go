package weatherstack

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey           = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

const puneBody = `{
  "request": {"type": "City", "query": "Pune, India", "unit": "m"},
  "location": {"name": "Pune", "country": "India", "localtime_epoch": 1714132800},
  "current": {
    "temperature": 31,
    "feelslike": 33,
    "humidity": 48,
    "pressure": 1009,
    "wind_speed": 13,
    "wind_degree": 200,
    "cloudcover": 25,
    "visibility": 10,
    "weather_descriptions": ["Partly cloudy"]
  }
}`

func testClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     testKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_CurrentReading_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current", r.URL.Path)
		assert.Equal(t, testKey, r.URL.Query().Get("access_key"))
		assert.Equal(t, "Pune", r.URL.Query().Get("query"))
		assert.Equal(t, "m", r.URL.Query().Get("units"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(puneBody))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	reading, err := c.CurrentReading(context.Background(), "Pune")
	require.NoError(t, err)

	assert.Equal(t, "Pune", reading.City)
	assert.Equal(t, "India", reading.Country)
	assert.Equal(t, "Partly cloudy", reading.Description)
	assert.Equal(t, 31.0, reading.Temperature)
	assert.Equal(t, 33.0, reading.FeelsLike)
	assert.Equal(t, 48.0, reading.Humidity)
	assert.Equal(t, 1009.0, reading.Pressure)
	assert.Equal(t, 13.0, reading.WindSpeed)
	assert.Equal(t, 200.0, reading.WindDegree)
	assert.Equal(t, 25.0, reading.CloudCover)
	assert.Equal(t, 10.0, reading.Visibility)
	assert.Equal(t, time.Unix(1714132800, 0).UTC(), reading.ObservedAt)

	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("success")), 0)
}

func TestClient_CurrentReading_APIErrorBody(t *testing.T) {
	srv := serveBody(t, http.StatusOK,
		`{"success": false, "error": {"code": 101, "type": "invalid_access_key", "info": "You have not supplied a valid API Access Key."}}`)

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamData)
	assert.Contains(t, err.Error(), "invalid_access_key")
	assert.InDelta(t, 1, testutil.ToFloat64(c.metrics.UpstreamRequests.WithLabelValues("error")), 0)
}

func TestClient_CurrentReading_Status(t *testing.T) {
	srv := serveBody(t, http.StatusUnauthorized, `{"message":"Not Authorized"}`)

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamData)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_CurrentReading_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"not json", `<html>`, "decode response"},
		{"no location", `{"current": {"temperature": 20}}`, "no location"},
		{"missing humidity", `{"location": {"name": "Pune"}, "current": {"temperature": 20, "pressure": 1000, "wind_speed": 3, "wind_degree": 10}}`, "humidity"},
		{"missing wind degree", `{"location": {"name": "Pune"}, "current": {"temperature": 20, "humidity": 50, "pressure": 1000, "wind_speed": 3}}`, "wind_degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveBody(t, http.StatusOK, tt.body)

			c := testClient(srv.URL, 5*time.Second)
			_, err := c.CurrentReading(context.Background(), "Pune")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstreamData)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestClient_CurrentReading_KeyNotInError(t *testing.T) {
	c := testClient("http://127.0.0.1:1", time.Second)
	_, err := c.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamData)
	assert.NotContains(t, err.Error(), testKey)
}

func TestClient_CurrentReading_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamData)
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c := NewClient(testKey, "http://api.weatherstack.com/", time.Second, observability.NewMetricsForTesting(), slog.Default())
	assert.Equal(t, "http://api.weatherstack.com", c.baseURL)
}

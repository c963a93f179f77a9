//go:build weatherstack

package weatherstack

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Weatherstack API and require WEATHERSTACK_API_KEY.
// Run with: go test -tags=weatherstack ./internal/adapter/weatherstack/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	key := os.Getenv("WEATHERSTACK_API_KEY")
	if key == "" {
		t.Fatal("WEATHERSTACK_API_KEY must be set to run smoke tests")
	}
	return NewClient(key, "http://api.weatherstack.com", 10*time.Second,
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_CurrentReading(t *testing.T) {
	c := smokeClient(t)

	reading, err := c.CurrentReading(context.Background(), "Pune")
	require.NoError(t, err)

	t.Logf("reading: %+v", reading)
	assert.Equal(t, "Pune", reading.City)
	assert.GreaterOrEqual(t, reading.Humidity, 0.0)
	assert.LessOrEqual(t, reading.Humidity, 100.0)
	assert.GreaterOrEqual(t, reading.WindDegree, 0.0)
}

func TestSmoke_UnknownCity(t *testing.T) {
	c := smokeClient(t)

	_, err := c.CurrentReading(context.Background(), "zzzz-no-such-place-zzzz")
	require.Error(t, err)
}

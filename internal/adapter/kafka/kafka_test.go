package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testResult() domain.PredictionResult {
	return domain.PredictionResult{
		Location:     "Pune",
		RainTomorrow: true,
		Temperature:  []domain.ForecastPoint{{Time: "15:00", Value: 30.5}},
		Humidity:     []domain.ForecastPoint{{Time: "15:00", Value: 61}},
		GeneratedAt:  time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC),
	}
}

func TestSerializeToMessage(t *testing.T) {
	result := testResult()

	msg, err := serializeToMessage(result)
	require.NoError(t, err)

	assert.Equal(t, []byte("Pune"), msg.Key)
	assert.Contains(t, string(msg.Value), `"rain_tomorrow":true`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "city", msg.Headers[0].Key)
	assert.Equal(t, []byte("Pune"), msg.Headers[0].Value)
	assert.Equal(t, "rain_tomorrow", msg.Headers[1].Key)
	assert.Equal(t, []byte("true"), msg.Headers[1].Value)
	assert.Equal(t, "generated_at", msg.Headers[2].Key)
	assert.Equal(t, []byte("2024-04-26T15:10:00Z"), msg.Headers[2].Value)

	var decoded domain.PredictionResult
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, result.Temperature, decoded.Temperature)
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	require.NoError(t, p.Publish(context.Background(), testResult()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("Pune"), w.msgs[0].Key)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := &Publisher{writer: w, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := p.Publish(context.Background(), testResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write prediction")
}

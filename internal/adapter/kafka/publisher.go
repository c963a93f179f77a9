package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/config"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher produces prediction events to a Kafka topic.
// It implements pipeline.ResultPublisher.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured prediction topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaPredictionTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes one prediction and writes it keyed by city, so every
// prediction for a city lands on the same partition.
func (p *Publisher) Publish(ctx context.Context, result domain.PredictionResult) error {
	msg, err := serializeToMessage(result)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write prediction: %w", err)
	}
	p.logger.Debug("prediction published", "city", result.Location)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a PredictionResult into a Kafka message.
func serializeToMessage(result domain.PredictionResult) (kafkago.Message, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize prediction: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(result.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "city", Value: []byte(result.Location)},
			{Key: "rain_tomorrow", Value: []byte(strconv.FormatBool(result.RainTomorrow))},
			{Key: "generated_at", Value: []byte(result.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

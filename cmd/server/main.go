package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/adapter/httpadapter"
	kafkaadapter "github.com/Utkarsh-0805/weather-prediction-project/internal/adapter/kafka"
	redisadapter "github.com/Utkarsh-0805/weather-prediction-project/internal/adapter/redis"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/adapter/weatherstack"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/config"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/pipeline"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	source := dataset.NewFileSource(cfg.HistoricalDataPath)
	checks := httpadapter.Checks{source}

	var readings domain.ReadingProvider = weatherstack.NewClient(
		cfg.WeatherstackAPIKey, cfg.WeatherstackBaseURL, cfg.WeatherstackTimeout, metrics, logger)

	var redisCloser func() error
	switch cfg.ReadingCache {
	case config.CacheMemory:
		readings = weatherstack.NewCachedProvider(readings, cfg.ReadingCacheSize, cfg.ReadingCacheTTL, clockwork.NewRealClock(), metrics)
		logger.Info("reading cache enabled", "backend", cfg.ReadingCache, "size", cfg.ReadingCacheSize, "ttl", cfg.ReadingCacheTTL)
	case config.CacheRedis:
		client := redisadapter.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		cached := redisadapter.NewCachedProvider(readings, client, cfg.ReadingCacheTTL, metrics, logger)
		readings = cached
		checks = append(checks, cached)
		redisCloser = client.Close
		logger.Info("reading cache enabled", "backend", cfg.ReadingCache, "addr", cfg.RedisAddr, "ttl", cfg.ReadingCacheTTL)
	default:
		logger.Info("reading cache disabled")
	}

	// A nil *Publisher must not reach the service as a non-nil interface.
	var publisher pipeline.ResultPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled() {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("prediction publishing enabled", "topic", cfg.KafkaPredictionTopic)
	} else {
		logger.Info("prediction publishing disabled")
	}

	svc := pipeline.New(readings, source, publisher, cfg.ForecastLocation, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, checks, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if redisCloser != nil {
		if err := redisCloser(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

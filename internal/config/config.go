package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Reading cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// HistoricalDataPath is the CSV read on every forecast.
	HistoricalDataPath string

	// Weatherstack live reading provider.
	WeatherstackAPIKey  string
	WeatherstackBaseURL string
	WeatherstackTimeout time.Duration

	// Live reading cache.
	ReadingCache     string
	ReadingCacheSize int
	ReadingCacheTTL  time.Duration
	RedisAddr        string
	RedisPassword    string

	// Prediction publishing. Disabled when KafkaBrokers is empty.
	KafkaBrokers         []string
	KafkaPredictionTopic string

	// ForecastLocation is the timezone of the hourly forecast labels.
	ForecastLocation *time.Location
}

// KafkaEnabled reports whether prediction events should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file (or ENV_FILE) is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	if err := loadDotEnv(sharedcfg.EnvOrDefault("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	weatherstackTimeout, err := parsePositiveDuration("WEATHERSTACK_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parsePositiveDuration("READING_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	tz := sharedcfg.EnvOrDefault("FORECAST_TIMEZONE", "Asia/Kolkata")
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_TIMEZONE %q: %w", tz, err)
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		HistoricalDataPath: sharedcfg.EnvOrDefault("HISTORICAL_DATA_PATH", "data/weather.csv"),

		WeatherstackAPIKey:  os.Getenv("WEATHERSTACK_API_KEY"),
		WeatherstackBaseURL: sharedcfg.EnvOrDefault("WEATHERSTACK_BASE_URL", "http://api.weatherstack.com"),
		WeatherstackTimeout: weatherstackTimeout,

		ReadingCache:     sharedcfg.EnvOrDefault("READING_CACHE", CacheMemory),
		ReadingCacheSize: cacheSize,
		ReadingCacheTTL:  cacheTTL,
		RedisAddr:        sharedcfg.EnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),

		KafkaBrokers:         brokers,
		KafkaPredictionTopic: sharedcfg.EnvOrDefault("KAFKA_PREDICTION_TOPIC", "weather-predictions"),

		ForecastLocation: location,
	}

	if cfg.WeatherstackAPIKey == "" {
		return nil, errors.New("WEATHERSTACK_API_KEY is required")
	}
	if cfg.HistoricalDataPath == "" {
		return nil, errors.New("HISTORICAL_DATA_PATH is required")
	}
	switch cfg.ReadingCache {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return nil, fmt.Errorf("invalid READING_CACHE %q: want memory, redis or none", cfg.ReadingCache)
	}
	if cfg.ReadingCache == CacheRedis && cfg.RedisAddr == "" {
		return nil, errors.New("READING_CACHE is redis but REDIS_ADDR is not set")
	}
	if cfg.KafkaEnabled() && cfg.KafkaPredictionTopic == "" {
		return nil, errors.New("KAFKA_PREDICTION_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("READING_CACHE_SIZE")
	if s == "" {
		return 256, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid READING_CACHE_SIZE")
	}
	return n, nil
}

package weatherstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
)

// Client implements domain.ReadingProvider using the Weatherstack current
// conditions API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Weatherstack client.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentReading fetches current conditions for city in metric units. Every
// failure wraps domain.ErrUpstreamData.
func (c *Client) CurrentReading(ctx context.Context, city string) (domain.LiveReading, error) {
	params := url.Values{
		"access_key": {c.apiKey},
		"query":      {city},
		"units":      {"m"},
	}

	start := time.Now()
	reading, err := c.doRequest(ctx, c.baseURL+"/current?"+params.Encode())
	c.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		c.logger.Warn("weatherstack request failed", "city", city, "error", err)
		return domain.LiveReading{}, fmt.Errorf("%w: weatherstack: %v", domain.ErrUpstreamData, err)
	}
	c.metrics.UpstreamRequests.WithLabelValues("success").Inc()
	return reading, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.LiveReading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.LiveReading{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the access key; keep it out of the error.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return domain.LiveReading{}, fmt.Errorf("current request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.LiveReading{}, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var wsResp response
	if err := json.NewDecoder(resp.Body).Decode(&wsResp); err != nil {
		return domain.LiveReading{}, fmt.Errorf("decode response: %w", err)
	}
	return wsResp.reading()
}

// Weatherstack API response types. Weatherstack answers errors with status
// 200 and an "error" object, so the body is checked before the payload.

type response struct {
	Error    *apiError `json:"error"`
	Location *location `json:"location"`
	Current  *current  `json:"current"`
}

type apiError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type location struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	LocaltimeEpoch int64  `json:"localtime_epoch"`
}

type current struct {
	Temperature         *float64 `json:"temperature"`
	FeelsLike           float64  `json:"feelslike"`
	Humidity            *float64 `json:"humidity"`
	Pressure            *float64 `json:"pressure"`
	WindSpeed           *float64 `json:"wind_speed"`
	WindDegree          *float64 `json:"wind_degree"`
	CloudCover          float64  `json:"cloudcover"`
	Visibility          float64  `json:"visibility"`
	WeatherDescriptions []string `json:"weather_descriptions"`
}

func (r response) reading() (domain.LiveReading, error) {
	if r.Error != nil {
		return domain.LiveReading{}, fmt.Errorf("api error %d (%s): %s", r.Error.Code, r.Error.Type, r.Error.Info)
	}
	if r.Location == nil || r.Current == nil {
		return domain.LiveReading{}, errors.New("response has no location or current conditions")
	}

	cur := r.Current
	required := []struct {
		name  string
		value *float64
	}{
		{"temperature", cur.Temperature},
		{"humidity", cur.Humidity},
		{"pressure", cur.Pressure},
		{"wind_speed", cur.WindSpeed},
		{"wind_degree", cur.WindDegree},
	}
	for _, f := range required {
		if f.value == nil {
			return domain.LiveReading{}, fmt.Errorf("current conditions missing %s", f.name)
		}
	}

	reading := domain.LiveReading{
		City:        r.Location.Name,
		Country:     r.Location.Country,
		Temperature: *cur.Temperature,
		FeelsLike:   cur.FeelsLike,
		Humidity:    *cur.Humidity,
		Pressure:    *cur.Pressure,
		WindSpeed:   *cur.WindSpeed,
		WindDegree:  *cur.WindDegree,
		CloudCover:  cur.CloudCover,
		Visibility:  cur.Visibility,
	}
	if len(cur.WeatherDescriptions) > 0 {
		reading.Description = cur.WeatherDescriptions[0]
	}
	if r.Location.LocaltimeEpoch > 0 {
		reading.ObservedAt = time.Unix(r.Location.LocaltimeEpoch, 0).UTC()
	}
	return reading, nil
}

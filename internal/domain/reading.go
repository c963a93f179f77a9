package domain

import (
	"context"
	"time"
)

// LiveReading holds current conditions for a queried location.
type LiveReading struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	WindDegree  float64   `json:"wind_degree"`
	CloudCover  float64   `json:"cloud_cover"`
	Visibility  float64   `json:"visibility"`
	ObservedAt  time.Time `json:"observed_at,omitzero"`
}

// ReadingProvider fetches current conditions for a location.
// Implementations wrap their failures with ErrUpstreamData.
type ReadingProvider interface {
	CurrentReading(ctx context.Context, city string) (LiveReading, error)
}

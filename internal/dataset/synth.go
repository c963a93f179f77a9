package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
)

// Synthesize generates n plausible daily records from seed. Temperature
// follows a bounded random walk, and days with humidity above 75% are
// usually followed by rain. Used for fixtures and local runs.
func Synthesize(n int, seed int64) []domain.HistoricalRecord {
	rng := rand.New(rand.NewSource(seed))
	points := domain.CompassPoints()

	records := make([]domain.HistoricalRecord, n)
	temp := 22.0
	for i := range records {
		temp += rng.NormFloat64()
		temp = math.Max(5, math.Min(40, temp))

		humidity := math.Round(math.Max(10, math.Min(100, 55+25*rng.NormFloat64())))
		spread := 4 + 6*rng.Float64()
		rain := "No"
		if (humidity > 75) != (rng.Float64() < 0.1) {
			rain = "Yes"
		}

		records[i] = domain.HistoricalRecord{
			MinTemp:       round1(temp - spread),
			MaxTemp:       round1(temp + spread/2),
			WindGustDir:   points[rng.Intn(len(points))],
			WindGustSpeed: float64(15 + rng.Intn(60)),
			Humidity:      humidity,
			Pressure:      round1(1015 - (humidity-55)/5 + 4*rng.NormFloat64()),
			Temp:          round1(temp),
			RainTomorrow:  rain,
		}
	}
	return records
}

// WriteCSV writes records with a RequiredColumns header.
func WriteCSV(w io.Writer, records []domain.HistoricalRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.RequiredColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(recordRow(r)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}


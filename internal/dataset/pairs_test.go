package dataset

import (
	"testing"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairsOf(t *testing.T) {
	pairs := PairsOf([]float64{1, 2, 4, 8})
	assert.Equal(t, []Pair{{1, 2}, {2, 4}, {4, 8}}, pairs)
}

func TestPairsOf_TooShort(t *testing.T) {
	assert.Empty(t, PairsOf(nil))
	assert.Empty(t, PairsOf([]float64{1}))
}

func TestPairs_RowOrder(t *testing.T) {
	table := FromRecords([]domain.HistoricalRecord{
		{WindGustDir: "N", RainTomorrow: "No", Humidity: 50},
		{WindGustDir: "N", RainTomorrow: "No", Humidity: 30},
		{WindGustDir: "N", RainTomorrow: "No", Humidity: 70},
	})

	pairs, err := Pairs(table, domain.ColHumidity)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{50, 30}, {30, 70}}, pairs)

	_, err = Pairs(table, domain.ColRainTomorrow)
	assert.Error(t, err)
}

package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyLabels(t *testing.T) {
	now := time.Date(2024, time.April, 26, 14, 20, 0, 0, time.UTC)

	labels := HourlyLabels(now, time.UTC, 5)
	assert.Equal(t, []string{"15:00", "16:00", "17:00", "18:00", "19:00"}, labels)
}

func TestHourlyLabels_WrapsMidnight(t *testing.T) {
	now := time.Date(2024, time.April, 26, 22, 0, 0, 0, time.UTC)

	labels := HourlyLabels(now, time.UTC, 3)
	assert.Equal(t, []string{"23:00", "00:00", "01:00"}, labels)
}

func TestHourlyLabels_Timezone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 08:50 UTC is 14:20 IST.
	now := time.Date(2024, time.April, 26, 8, 50, 0, 0, time.UTC)

	labels := HourlyLabels(now, kolkata, 2)
	assert.Equal(t, []string{"15:00", "16:00"}, labels)
}

func TestHourlyLabels_NonPositive(t *testing.T) {
	assert.Empty(t, HourlyLabels(time.Now(), time.UTC, 0))
}

func TestSetClock(t *testing.T) {
	fixed := time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	assert.Equal(t, fixed, Now())
}

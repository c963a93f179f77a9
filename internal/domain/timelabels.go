package domain

import (
	"fmt"
	"time"
)

// HourlyLabels returns n labels for the whole hours following now in loc,
// formatted "15:00". A reading at 14:20 yields "15:00", "16:00", ...
func HourlyLabels(now time.Time, loc *time.Location, n int) []string {
	if loc == nil {
		loc = time.UTC
	}
	if n <= 0 {
		return nil
	}

	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc).Add(time.Hour)

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", next.Add(time.Duration(i)*time.Hour).Hour())
	}
	return labels
}

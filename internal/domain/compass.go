package domain

import (
	"fmt"
	"math"
)

// compassSector is a half-open bearing interval [start, end).
type compassSector struct {
	name       string
	start, end float64
}

// compassSectors partitions [0, 360) into 16 sectors of 22.5 degrees. North
// straddles zero, so it appears twice: once for [348.75, 360) and once for
// [0, 11.25).
var compassSectors = []compassSector{
	{"N", 0, 11.25},
	{"NNE", 11.25, 33.75},
	{"NE", 33.75, 56.25},
	{"ENE", 56.25, 78.75},
	{"E", 78.75, 101.25},
	{"ESE", 101.25, 123.75},
	{"SE", 123.75, 146.25},
	{"SSE", 146.25, 168.75},
	{"S", 168.75, 191.25},
	{"SSW", 191.25, 213.75},
	{"SW", 213.75, 236.25},
	{"WSW", 236.25, 258.75},
	{"W", 258.75, 281.25},
	{"WNW", 281.25, 303.75},
	{"NW", 303.75, 326.25},
	{"NNW", 326.25, 348.75},
	{"N", 348.75, 360},
}

// CompassPoints lists the 16 compass point names clockwise from north.
func CompassPoints() []string {
	points := make([]string, 0, 16)
	for _, s := range compassSectors[:16] {
		points = append(points, s.name)
	}
	return points
}

// CompassBucket maps a wind bearing in degrees to its 16-point compass name.
// Any finite bearing is accepted; it is normalized into [0, 360) first.
func CompassBucket(degrees float64) (string, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return "", fmt.Errorf("%w: bearing %v is not finite", ErrDirectionMapping, degrees)
	}

	deg := math.Mod(degrees, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-18 mod 360 rounds up to exactly 360.
	if deg >= 360 {
		deg = 0
	}

	for _, s := range compassSectors {
		if deg >= s.start && deg < s.end {
			return s.name, nil
		}
	}
	return "", fmt.Errorf("%w: bearing %v matched no sector", ErrDirectionMapping, degrees)
}

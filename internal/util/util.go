package util

import (
	"math"
	"time"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Round rounds to 2 decimals.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Percent returns part/total as a percentage rounded to 2 decimals. A zero total yields 0.
func Percent[T ~int | ~int64](part, total T) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part) * 100 / float64(total))
}

// UnixTime converts seconds since epoch to a UTC time. Zero means unset and yields nil.
func UnixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

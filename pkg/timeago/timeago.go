// Package timeago renders a past instant as a coarse relative label
// ("3 days ago"). Units use fixed-length approximations: 365-day years
// and 30-day months. No localization; behavior for future instants is
// undefined (they fall through to the seconds branch).
package timeago

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// Format returns a relative label for t as seen from now. The first
// unit whose magnitude strictly exceeds 1 wins, in descending order
// years, months, days, hours, minutes; otherwise seconds. Magnitudes
// are floored and the unit word is always plural.
func Format(t, now time.Time) string {
	seconds := now.Unix() - t.Unix()

	if interval := float64(seconds) / secondsPerYear; interval > 1 {
		return label(interval, "years")
	}
	if interval := float64(seconds) / secondsPerMonth; interval > 1 {
		return label(interval, "months")
	}
	if interval := float64(seconds) / secondsPerDay; interval > 1 {
		return label(interval, "days")
	}
	if interval := float64(seconds) / secondsPerHour; interval > 1 {
		return label(interval, "hours")
	}
	if interval := float64(seconds) / secondsPerMinute; interval > 1 {
		return label(interval, "minutes")
	}
	return fmt.Sprintf("%d seconds ago", seconds)
}

// Since is Format against the wall clock.
func Since(t time.Time) string {
	return Format(t, time.Now())
}

func label(interval float64, unit string) string {
	return fmt.Sprintf("%d %s ago", int64(interval), unit)
}

package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by trip requests.
const DateLayout = "2006-01-02"

// ParseTripDate parses a YYYY-MM-DD date at UTC midnight.
func ParseTripDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// TripDurationDays counts calendar days inclusively: a trip starting and ending
// on the same date lasts one day.
func TripDurationDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// FormatDate renders t as YYYY-MM-DD; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatTravelDuration renders a duration the way route providers do,
// e.g. "7 mins" or "1 hour 5 mins".
func FormatTravelDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	hours, rest := mins/60, mins%60

	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}

	switch {
	case hours == 0:
		return plural(rest, "min")
	case rest == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + " " + plural(rest, "min")
	}
}

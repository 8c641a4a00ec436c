// Package timezone pins every date/time the service produces to the
// restaurant's local zone. Stamping and report dates must agree regardless
// of where the process runs.
package timezone

import (
	"strings"
	"time"
)

const (
	// Name is the fixed operational timezone, process-wide.
	Name = "America/Mexico_City"

	// DateLayout is the only accepted wire format for dates.
	DateLayout = "2006-01-02"

	// TimeLayout is the wire format for the time-of-day of an event.
	TimeLayout = "15:04:05"
)

var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(Name)
	if err != nil {
		panic(err)
	}

	return loc
}

// Now returns the current instant in the operational timezone.
func Now() time.Time {
	return time.Now().In(location)
}

// Today returns the current date in the operational timezone,
// truncated to midnight.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf strips the time-of-day from t, keeping the calendar date as
// observed in the operational timezone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses s against DateLayout. The second return value reports
// whether s was a well-formed date; callers treat anything else as absent.
func ParseDate(s string) (time.Time, bool) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

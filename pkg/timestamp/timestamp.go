package timestamp

import (
	"time"
)

// DisplayLayout renders as DD.MM.YYYY HH:MM
const DisplayLayout = "02.01.2006 15:04"

// isoLayouts are the ISO-8601 shapes a browser or client is likely to send.
// Offsets include the "Z" suffix; fractional seconds are optional.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse parses an ISO-8601 string. The returned time keeps the offset given
// in the input; strings without an offset are returned as naive UTC wall time.
// Surrounding whitespace makes the input invalid.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders raw for display, falling back to now when raw is empty or
// cannot be parsed. It never fails.
func Format(raw string, now time.Time) string {
	if t, ok := Parse(raw); ok {
		return t.Format(DisplayLayout)
	}
	return now.Local().Format(DisplayLayout)
}

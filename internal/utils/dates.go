package utils

import "time"

const dayLayout = "2006-01-02"

// ParseDay parses a wire date ("2006-01-02") as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// FormatDay renders a timestamp as a wire date.
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

package booking

import "time"

// Interval is an inclusive day range: a rental from 2024-06-01 to 2024-06-05
// occupies both endpoint days. Start and End are normalized to midnight UTC
// and never change after construction.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a day-normalized interval, rejecting ranges whose end
// precedes their start.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: DayOf(start), End: DayOf(end)}
	if iv.End.Before(iv.Start) {
		return Interval{}, ErrInvalidInterval
	}
	return iv, nil
}

// DayOf truncates t to midnight UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether a and b share at least one day. Symmetric, and
// true for identical ranges.
func (a Interval) Overlaps(b Interval) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// Days is the inclusive day count; a same-day rental counts as one day.
func (a Interval) Days() int {
	return int(a.End.Sub(a.Start).Hours()/24) + 1
}

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ival(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := NewInterval(day(start), day(end))
	require.NoError(t, err)
	return iv
}

func TestNewIntervalRejectsReversedRange(t *testing.T) {
	_, err := NewInterval(day("2024-06-05"), day("2024-06-01"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewIntervalNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start := time.Date(2024, 6, 1, 15, 30, 0, 0, loc)
	iv, err := NewInterval(start, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, iv.Start, iv.End)
}

func TestOverlaps(t *testing.T) {
	base := ival(t, "2024-06-01", "2024-06-05")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", ival(t, "2024-06-01", "2024-06-05"), true},
		{"overlapping tail", ival(t, "2024-06-04", "2024-06-07"), true},
		{"adjacent after", ival(t, "2024-06-06", "2024-06-10"), false},
		{"adjacent before", ival(t, "2024-05-28", "2024-05-31"), false},
		{"shared endpoint day", ival(t, "2024-06-05", "2024-06-08"), true},
		{"contained", ival(t, "2024-06-02", "2024-06-03"), true},
		{"containing", ival(t, "2024-05-30", "2024-06-10"), true},
		{"disjoint", ival(t, "2024-07-01", "2024-07-05"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// overlap is symmetric
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestDays(t *testing.T) {
	assert.Equal(t, 1, ival(t, "2024-06-01", "2024-06-01").Days())
	assert.Equal(t, 5, ival(t, "2024-06-01", "2024-06-05").Days())
	assert.Equal(t, 31, ival(t, "2024-03-01", "2024-03-31").Days())
}

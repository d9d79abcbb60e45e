package booking

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFreeEmptyIndex(t *testing.T) {
	ix := NewAvailabilityIndex()
	assert.True(t, ix.IsFree("v1", ival(t, "2024-06-01", "2024-06-05")))
}

func TestCommitBlocksOverlapOnly(t *testing.T) {
	ix := NewAvailabilityIndex()
	ix.Commit("v1", "r1", ival(t, "2024-06-01", "2024-06-05"))

	assert.False(t, ix.IsFree("v1", ival(t, "2024-06-04", "2024-06-07")))
	assert.True(t, ix.IsFree("v1", ival(t, "2024-06-06", "2024-06-10")))
	// other vehicles are unaffected
	assert.True(t, ix.IsFree("v2", ival(t, "2024-06-01", "2024-06-05")))
}

func TestReleaseFreesInterval(t *testing.T) {
	ix := NewAvailabilityIndex()
	iv := ival(t, "2024-06-01", "2024-06-05")
	ix.Commit("v1", "r1", iv)
	require.False(t, ix.IsFree("v1", iv))

	ix.Release("v1", "r1")
	assert.True(t, ix.IsFree("v1", iv))
	assert.Equal(t, 0, ix.OccupiedCount("v1"))

	// releasing twice is harmless
	ix.Release("v1", "r1")
	assert.Equal(t, 0, ix.OccupiedCount("v1"))
}

func TestReleaseKeepsOtherReservations(t *testing.T) {
	ix := NewAvailabilityIndex()
	ix.Commit("v1", "r1", ival(t, "2024-06-01", "2024-06-05"))
	ix.Commit("v1", "r2", ival(t, "2024-06-10", "2024-06-12"))
	ix.Commit("v1", "r3", ival(t, "2024-06-20", "2024-06-25"))

	ix.Release("v1", "r2")
	assert.True(t, ix.IsFree("v1", ival(t, "2024-06-10", "2024-06-12")))
	assert.False(t, ix.IsFree("v1", ival(t, "2024-06-03", "2024-06-04")))
	assert.False(t, ix.IsFree("v1", ival(t, "2024-06-21", "2024-06-21")))
}

func TestLoadRebuildsFromOccupyingOnly(t *testing.T) {
	ix := NewAvailabilityIndex()
	ix.Commit("stale", "old", ival(t, "2024-01-01", "2024-01-02"))

	ix.Load([]Reservation{
		{ID: "r1", VehicleID: "v1", Status: StatusPending, Interval: ival(t, "2024-06-01", "2024-06-05")},
		{ID: "r2", VehicleID: "v1", Status: StatusAccepted, Interval: ival(t, "2024-06-10", "2024-06-12")},
		{ID: "r3", VehicleID: "v1", Status: StatusCancelled, Interval: ival(t, "2024-06-06", "2024-06-09")},
		{ID: "r4", VehicleID: "v2", Status: StatusCompleted, Interval: ival(t, "2024-06-01", "2024-06-05")},
	})

	assert.True(t, ix.IsFree("stale", ival(t, "2024-01-01", "2024-01-02")))
	assert.False(t, ix.IsFree("v1", ival(t, "2024-06-05", "2024-06-05")))
	assert.False(t, ix.IsFree("v1", ival(t, "2024-06-11", "2024-06-11")))
	assert.True(t, ix.IsFree("v1", ival(t, "2024-06-06", "2024-06-09")))
	assert.True(t, ix.IsFree("v2", ival(t, "2024-06-01", "2024-06-05")))
}

// Commits random intervals whenever the index reports them free and verifies
// the committed set stays pairwise non-overlapping after every accept.
func TestRandomIntervalsNeverOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ix := NewAvailabilityIndex()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var committed []Interval
	for i := 0; i < 500; i++ {
		start := base.AddDate(0, 0, rng.Intn(120))
		end := start.AddDate(0, 0, rng.Intn(10))
		iv, err := NewInterval(start, end)
		require.NoError(t, err)

		if ix.IsFree("v1", iv) {
			ix.Commit("v1", fmt.Sprintf("r%d", i), iv)
			committed = append(committed, iv)
		}

		for a := 0; a < len(committed); a++ {
			for b := a + 1; b < len(committed); b++ {
				require.False(t, committed[a].Overlaps(committed[b]),
					"intervals %v and %v overlap after %d inserts", committed[a], committed[b], i+1)
			}
		}
	}
	require.NotEmpty(t, committed)
	assert.Equal(t, len(committed), ix.OccupiedCount("v1"))
}

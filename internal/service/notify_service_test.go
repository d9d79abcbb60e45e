package service

import (
	"errors"
	"sync"
	"testing"

	"rentacar/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu       sync.Mutex
	recorded []booking.Event
	failures int
}

func (f *fakeRecorder) RecordEvent(ev booking.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("event store unreachable")
	}
	f.recorded = append(f.recorded, ev)
	return nil
}

func (f *fakeRecorder) all() []booking.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]booking.Event, len(f.recorded))
	copy(out, f.recorded)
	return out
}

func TestNotifySinkRecordsEvents(t *testing.T) {
	recorder := &fakeRecorder{}
	store := newFakeStore()
	res := &booking.Reservation{ID: "r1", VehicleID: "v1", RenterID: "u1", Status: booking.StatusPending}
	require.NoError(t, store.Create(res))

	sink := NewNotifySink(recorder, nil, nil, nil, store)
	sink.Publish(booking.Event{ReservationID: "r1", VehicleID: "v1", RenterID: "u1", To: booking.StatusPending})
	sink.Publish(booking.Event{ReservationID: "r1", VehicleID: "v1", RenterID: "u1", From: booking.StatusPending, To: booking.StatusAccepted})
	sink.Close()

	events := recorder.all()
	require.Len(t, events, 2)
	assert.Equal(t, booking.StatusPending, events[0].To)
	assert.Equal(t, booking.StatusAccepted, events[1].To)
}

func TestNotifySinkRetriesRecording(t *testing.T) {
	recorder := &fakeRecorder{failures: 2}
	store := newFakeStore()
	require.NoError(t, store.Create(&booking.Reservation{ID: "r1", Status: booking.StatusPending}))

	sink := NewNotifySink(recorder, nil, nil, nil, store)
	sink.Publish(booking.Event{ReservationID: "r1", To: booking.StatusPending})
	sink.Close()

	require.Len(t, recorder.all(), 1, "transient recorder failures should be retried")
}

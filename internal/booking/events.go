package booking

import "time"

// Event records one successful lifecycle transition. From is empty for the
// creation event. Delivery is at-least-once; consumers de-duplicate by
// (ReservationID, To).
type Event struct {
	ReservationID string    `json:"reservation_id"`
	VehicleID     string    `json:"vehicle_id"`
	RenterID      string    `json:"renter_id"`
	From          Status    `json:"from,omitempty"`
	To            Status    `json:"to"`
	At            time.Time `json:"at"`
}

// Sink consumes lifecycle events. Publish must not block and must never fail
// the transition that produced the event; a sink that cannot deliver logs and
// retries on its own.
type Sink interface {
	Publish(Event)
}

// NoOpSink discards events.
type NoOpSink struct{}

func (NoOpSink) Publish(Event) {}

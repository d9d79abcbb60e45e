package booking

import "time"

// Reservation is the primary booking record. Everything except Status,
// PaymentRef and UpdatedAt is immutable after creation; date changes require
// cancelling and re-booking. Status only moves along the transition table.
type Reservation struct {
	ID                 string
	VehicleID          string
	RenterID           string
	Interval           Interval
	Status             Status
	PriceSnapshotCents int
	// PaymentRef is the payment collaborator's intent reference, set once the
	// charge is captured. Empty means nothing to refund.
	PaymentRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

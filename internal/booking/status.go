package booking

// Status is a reservation lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRefused   Status = "refused"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// transitions is the closed edge set of the lifecycle. Any edge not listed
// here fails with ErrInvalidTransition. refused, cancelled, failed and
// refunded have no outgoing edges; completed only allows the refund edge.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRefused, StatusCancelled},
	StatusAccepted:  {StatusCancelled, StatusCompleted, StatusFailed},
	StatusCompleted: {StatusRefunded},
}

// ParseStatus maps a wire string onto a known status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRefused, StatusCancelled,
		StatusCompleted, StatusFailed, StatusRefunded:
		return Status(s), true
	}
	return "", false
}

// Occupying reports whether a reservation in s blocks other bookings on the
// same vehicle.
func (s Status) Occupying() bool {
	return s == StatusPending || s == StatusAccepted
}

// Terminal reports whether s admits no further transitions at all.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the edge s -> to is in the lifecycle.
func (s Status) CanTransitionTo(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

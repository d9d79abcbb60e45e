package entities

// ReservationRequest is the booking creation payload. Dates are inclusive
// days in "2006-01-02" form; the renter comes from the token, never the body.
type ReservationRequest struct {
	VehicleID string `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// StatusUpdateRequest is the operator transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// LoginRequest is the operator login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

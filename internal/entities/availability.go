package entities

// AvailabilityRequest asks whether a vehicle is free for an inclusive day
// range.
type AvailabilityRequest struct {
	VehicleID string `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityResponse struct {
	VehicleID          string `json:"vehicle_id"`
	RequestedStartDate string `json:"requested_start_date"`
	RequestedEndDate   string `json:"requested_end_date"`
	Available          bool   `json:"available"`
}

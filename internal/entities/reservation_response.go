package entities

import (
	"time"

	"rentacar/internal/booking"
	"rentacar/internal/utils"
)

type ReservationResponse struct {
	ID                 string    `json:"id"`
	VehicleID          string    `json:"vehicle_id"`
	RenterID           string    `json:"renter_id"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	Status             string    `json:"status"`
	PriceSnapshotCents int       `json:"price_snapshot_cents"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewReservationResponse(res *booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 res.ID,
		VehicleID:          res.VehicleID,
		RenterID:           res.RenterID,
		StartDate:          utils.FormatDay(res.Interval.Start),
		EndDate:            utils.FormatDay(res.Interval.End),
		Status:             string(res.Status),
		PriceSnapshotCents: res.PriceSnapshotCents,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}

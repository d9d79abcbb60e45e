package entities

import "rentacar/internal/booking"

type ReservationsList struct {
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit,omitempty"`
	Offset       int                   `json:"offset,omitempty"`
	Reservations []ReservationResponse `json:"reservations"`
}

func NewReservationsList(reservations []booking.Reservation) ReservationsList {
	list := ReservationsList{
		Total:        len(reservations),
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for i := range reservations {
		list.Reservations = append(list.Reservations, NewReservationResponse(&reservations[i]))
	}
	return list
}

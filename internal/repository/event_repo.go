package repository

import (
	"database/sql"
	"fmt"

	"rentacar/internal/booking"
)

// EventRepository persists the lifecycle event stream. The unique key on
// (reservation_id, to_status) makes replays harmless: delivery is
// at-least-once and this table is the dedup point for downstream consumers.
type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) RecordEvent(ev booking.Event) error {
	query := `
		INSERT INTO reservation_events
		(reservation_id, vehicle_id, renter_id, from_status, to_status, occurred_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		ON CONFLICT (reservation_id, to_status) DO NOTHING`
	_, err := r.DB.Exec(query,
		ev.ReservationID, ev.VehicleID, ev.RenterID,
		string(ev.From), string(ev.To), ev.At,
	)
	if err != nil {
		return fmt.Errorf("error recording event %s -> %s for reservation %s: %w",
			ev.From, ev.To, ev.ReservationID, err)
	}
	return nil
}

// ListEvents returns the audit trail of one reservation, oldest first.
func (r *EventRepository) ListEvents(reservationID string) ([]booking.Event, error) {
	query := `
		SELECT reservation_id, vehicle_id, renter_id, COALESCE(from_status, ''), to_status, occurred_at
		FROM reservation_events
		WHERE reservation_id = $1
		ORDER BY occurred_at`
	rows, err := r.DB.Query(query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("error querying events for reservation %s: %w", reservationID, err)
	}
	defer rows.Close()

	var events []booking.Event
	for rows.Next() {
		var ev booking.Event
		var from, to string
		if err := rows.Scan(&ev.ReservationID, &ev.VehicleID, &ev.RenterID, &from, &to, &ev.At); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		ev.From = booking.Status(from)
		ev.To = booking.Status(to)
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating events: %w", err)
	}
	return events, nil
}

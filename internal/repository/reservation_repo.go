package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentacar/internal/booking"

	"github.com/lib/pq"
)

const reservationColumns = `id, vehicle_id, renter_id, start_date, end_date, status, price_snapshot_cents, COALESCE(payment_ref, ''), created_at, updated_at`

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *booking.Reservation) error {
	query := `
		INSERT INTO reservations
		(id, vehicle_id, renter_id, start_date, end_date, status, price_snapshot_cents, payment_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)
		RETURNING created_at, updated_at`
	err := r.DB.QueryRow(query,
		res.ID,
		res.VehicleID,
		res.RenterID,
		res.Interval.Start,
		res.Interval.End,
		string(res.Status),
		res.PriceSnapshotCents,
		res.PaymentRef,
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting reservation %s: %w", res.ID, err)
	}
	return nil
}

func (r *ReservationRepository) Get(id string) (*booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s: %w", id, booking.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying reservation %s: %w", id, err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(id string, status booking.Status, updatedAt time.Time) error {
	query := `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.DB.Exec(query, string(status), updatedAt, id)
	if err != nil {
		return fmt.Errorf("error updating reservation %s status: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected for reservation %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("reservation %s: %w", id, booking.ErrNotFound)
	}
	return nil
}

// ListByVehicle pages through a vehicle's reservations. LIMIT NULL means no
// limit, so a zero limit returns everything.
func (r *ReservationRepository) ListByVehicle(vehicleID string, statuses []booking.Status, limit, offset int) ([]booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE vehicle_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY start_date
		LIMIT NULLIF($3, 0) OFFSET $4`
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return r.listReservations(query, vehicleID, statusArray(statuses), limit, offset)
}

func (r *ReservationRepository) ListByRenter(renterID string, statuses []booking.Status) ([]booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE renter_id = $1 AND ($2::text[] IS NULL OR status = ANY($2))
		ORDER BY start_date`
	return r.listReservations(query, renterID, statusArray(statuses))
}

// ListOccupying returns every reservation whose status still blocks its
// vehicle; the availability index is rebuilt from this at startup.
func (r *ReservationRepository) ListOccupying() ([]booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status IN ('pending', 'accepted')
		ORDER BY vehicle_id, start_date`
	return r.listReservations(query)
}

// ListAcceptedEndedBefore returns accepted reservations whose rental period
// ended before the given day. Feeds the completion sweep.
func (r *ReservationRepository) ListAcceptedEndedBefore(day time.Time) ([]booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = 'accepted' AND end_date < $1
		ORDER BY end_date`
	return r.listReservations(query, day)
}

// ListPendingStartedBefore returns pending reservations whose start day came
// and went without an operator decision. Feeds the stale-pending sweep.
func (r *ReservationRepository) ListPendingStartedBefore(day time.Time) ([]booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = 'pending' AND start_date < $1
		ORDER BY start_date`
	return r.listReservations(query, day)
}

func (r *ReservationRepository) listReservations(query string, args ...interface{}) ([]booking.Reservation, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*booking.Reservation, error) {
	var res booking.Reservation
	var status string
	var start, end time.Time
	err := row.Scan(
		&res.ID, &res.VehicleID, &res.RenterID,
		&start, &end, &status,
		&res.PriceSnapshotCents, &res.PaymentRef,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.Status = booking.Status(status)
	res.Interval, err = booking.NewInterval(start, end)
	if err != nil {
		return nil, fmt.Errorf("reservation %s has invalid interval: %w", res.ID, err)
	}
	return &res, nil
}

func statusArray(statuses []booking.Status) interface{} {
	if len(statuses) == 0 {
		return nil
	}
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return pq.Array(out)
}

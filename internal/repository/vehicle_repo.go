package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/booking"
	"rentacar/internal/db"
)

// VehicleRepository is the engine's read-only view of the vehicle catalog.
type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

func (r *VehicleRepository) VehicleExists(id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM vehicles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking vehicle %s exists: %w", id, err)
	}
	return exists, nil
}

func (r *VehicleRepository) IsVehicleRetired(id string) (bool, error) {
	var retired bool
	err := r.DB.QueryRow(`SELECT retired FROM vehicles WHERE id = $1`, id).Scan(&retired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("vehicle %s: %w", id, booking.ErrVehicleUnavailable)
		}
		return false, fmt.Errorf("error checking vehicle %s retired: %w", id, err)
	}
	return retired, nil
}

func (r *VehicleRepository) DayRateCents(id string) (int, error) {
	var rate int
	err := r.DB.QueryRow(`SELECT day_rate_cents FROM vehicles WHERE id = $1`, id).Scan(&rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("vehicle %s: %w", id, booking.ErrVehicleUnavailable)
		}
		return 0, fmt.Errorf("error querying day rate for vehicle %s: %w", id, err)
	}
	return rate, nil
}

func (r *VehicleRepository) GetVehicle(id string) (*db.Vehicle, error) {
	var v db.Vehicle
	query := `SELECT id, plate, model, day_rate_cents, retired FROM vehicles WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&v.ID, &v.Plate, &v.Model, &v.DayRateCents, &v.Retired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vehicle %s: %w", id, booking.ErrVehicleUnavailable)
		}
		return nil, fmt.Errorf("error querying vehicle %s: %w", id, err)
	}
	return &v, nil
}

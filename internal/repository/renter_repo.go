package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/db"
)

// RenterRepository reads the contact mirror the identity service maintains
// for us. Notification delivery is the only consumer.
type RenterRepository struct {
	DB *sql.DB
}

func NewRenterRepository(database *sql.DB) *RenterRepository {
	return &RenterRepository{DB: database}
}

func (r *RenterRepository) ContactForRenter(id string) (*db.Renter, error) {
	var renter db.Renter
	query := `SELECT id, name, email, COALESCE(phone, '') FROM renters WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&renter.ID, &renter.Name, &renter.Email, &renter.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("renter %s not found", id)
		}
		return nil, fmt.Errorf("error querying renter %s: %w", id, err)
	}
	return &renter, nil
}

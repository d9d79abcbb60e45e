package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/db"
)

type OperatorRepository struct {
	DB *sql.DB
}

func NewOperatorRepository(database *sql.DB) *OperatorRepository {
	return &OperatorRepository{DB: database}
}

// GetByEmail returns nil without error when no operator matches, so the
// login path can answer "invalid credentials" uniformly.
func (r *OperatorRepository) GetByEmail(email string) (*db.Operator, error) {
	var op db.Operator
	query := `SELECT id, email, password_hash FROM operators WHERE email = $1`
	err := r.DB.QueryRow(query, email).Scan(&op.ID, &op.Email, &op.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying operator by email: %w", err)
	}
	return &op, nil
}

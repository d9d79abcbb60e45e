package db

// Vehicle is a catalog row. The catalog is owned elsewhere; the engine only
// reads existence, retirement and the day rate.
type Vehicle struct {
	ID           string
	Plate        string
	Model        string
	DayRateCents int
	Retired      bool
}

// Operator is an admin login row.
type Operator struct {
	ID           string
	Email        string
	PasswordHash string
}

// Renter is the read-only contact mirror kept for notifications.
type Renter struct {
	ID    string
	Name  string
	Email string
	Phone string
}

package domain

import "time"

// Customer represents a client whose appointments are scheduled
type Customer struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	Phone      string
	DivisionID int64

	// Read-only, filled from joins with divisions and countries
	DivisionName string
	CountryID    int64
	CountryName  string

	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	LastUpdatedBy string
}

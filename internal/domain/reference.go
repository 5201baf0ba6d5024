package domain

import "time"

// Contact is the staff member an appointment is held with
type Contact struct {
	ID    int64
	Name  string
	Email string
}

// User is an application user who creates and edits records
type User struct {
	ID            int64
	UserName      string
	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	LastUpdatedBy string
}

// Country groups first-level divisions
type Country struct {
	ID   int64
	Name string
}

// Division is a first-level division (state, province, region) of a country
type Division struct {
	ID        int64
	Name      string
	CountryID int64
}

// Session identifies the user acting on behalf of a request.
// It replaces any process-wide "current user" and is passed explicitly.
type Session struct {
	UserID   int64
	UserName string
}

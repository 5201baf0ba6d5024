package domain

import "time"

// Appointment represents a scheduled meeting between a user, a customer and a contact
type Appointment struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time

	CustomerID int64
	UserID     int64
	ContactID  int64

	CreatedAt     time.Time
	CreatedBy     string
	UpdatedAt     time.Time
	LastUpdatedBy string
}

// Interval returns the [Start, End) time range of the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}

// Duration returns the length of the appointment
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Interval is a time range compared as absolute instants
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether Start is strictly before End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Period is a half-open [From, To) window used to filter appointments by start time
type Period struct {
	From time.Time
	To   time.Time
}

// AppointmentFilter selects a subset of appointments. Zero fields are ignored.
type AppointmentFilter struct {
	CustomerID *int64
	ContactID  *int64
	UserID     *int64
	Period     *Period
}

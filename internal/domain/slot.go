package domain

import "time"

// TimeSlot is a selectable appointment boundary in the caller's time zone
type TimeSlot struct {
	Time  time.Time
	Label string
}

// TypeMonthCount is the number of appointments of one type starting in one month
type TypeMonthCount struct {
	Type  string
	Month time.Month
	Count int
}

// ContactSchedule lists the appointments held with a contact
type ContactSchedule struct {
	Contact      Contact
	Appointments []*Appointment
}

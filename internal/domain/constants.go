package domain

import "time"

// Default business hours
const (
	DefaultBusinessTimeZone = "America/New_York"
	DefaultOpenHour         = 8
	DefaultCloseHour        = 22
	DefaultSlotStepMinutes  = 15
)

// DefaultUpcomingWindow is how far ahead a user's upcoming appointments are looked up
const DefaultUpcomingWindow = 15 * time.Minute

// Validation limits
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 50
	MaxLocationLength    = 50
	MaxTypeLength        = 50
	MaxNameLength        = 50
	MaxAddressLength     = 100
	MaxPostalCodeLength  = 50
	MaxPhoneLength       = 50
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlotLabelFormat = "03:04 PM"   // 12-hour clock with AM/PM
	MonthFormat     = "January"
)

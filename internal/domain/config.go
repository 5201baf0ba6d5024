package domain

import (
	"fmt"
	"time"
)

// BusinessHours describes the daily window appointments may be booked in.
// Open and Close are offsets from midnight in the reference time zone.
type BusinessHours struct {
	TimeZone string
	Open     time.Duration
	Close    time.Duration
	Step     time.Duration
}

// DefaultBusinessHours returns 08:00-22:00 America/New_York with 15 minute slots
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		TimeZone: DefaultBusinessTimeZone,
		Open:     DefaultOpenHour * time.Hour,
		Close:    DefaultCloseHour * time.Hour,
		Step:     DefaultSlotStepMinutes * time.Minute,
	}
}

// Validate checks that the window is non-empty and fits in a day
func (h BusinessHours) Validate() error {
	if h.Step <= 0 {
		return fmt.Errorf("slot step must be positive, got %s", h.Step)
	}
	if h.Open < 0 || h.Close > 24*time.Hour {
		return fmt.Errorf("business hours must lie within a day, got %s-%s", h.Open, h.Close)
	}
	if h.Open >= h.Close {
		return fmt.Errorf("open (%s) must be before close (%s)", h.Open, h.Close)
	}
	return nil
}

// SlotsPerDay returns how many start slots fit in the window
func (h BusinessHours) SlotsPerDay() int {
	if h.Step <= 0 {
		return 0
	}
	return int((h.Close - h.Open + h.Step - 1) / h.Step)
}

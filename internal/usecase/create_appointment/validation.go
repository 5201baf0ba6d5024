package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest проверяет обязательные поля и корректность интервала
func validateRequest(req *Request) error {
	if req.Session.UserName == "" {
		return fmt.Errorf("%w: session user is required", ErrInvalidInput)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"title", req.Title, domain.MaxTitleLength},
		{"description", req.Description, domain.MaxDescriptionLength},
		{"location", req.Location, domain.MaxLocationLength},
		{"type", req.Type, domain.MaxTypeLength},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
		if utf8.RuneCountInString(f.value) > f.max {
			return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, f.name, f.max)
		}
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.ContactID <= 0 {
		return fmt.Errorf("%w: contactId must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return ErrInvalidTimeRange
	}

	return nil
}

// Package overlap проверяет, пересекается ли встреча клиента с уже сохраненными
package overlap

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// NewAppointmentID передается вместо ID для встречи, которая еще не сохранена.
// Хранилище выдает только положительные ID, поэтому совпадений не будет.
const NewAppointmentID int64 = 0

// Checker проверяет пересечения встреч. Не хранит изменяемого состояния.
type Checker struct {
	repo AppointmentRepository
}

// NewChecker создает новый экземпляр проверки пересечений
func NewChecker(repo AppointmentRepository) *Checker {
	return &Checker{repo: repo}
}

// HasOverlap возвращает true, если интервал [start, end) конфликтует хотя бы с одной
// встречей того же клиента, кроме встречи с appointmentID
func (c *Checker) HasOverlap(ctx context.Context, customerID, appointmentID int64, start, end time.Time) (bool, error) {
	appointments, err := c.repo.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - customer=%d: %w", ErrRetrieval, customerID, err)
	}

	candidate := domain.Interval{Start: start, End: end}

	for _, a := range appointments {
		if a.CustomerID != customerID || a.ID == appointmentID {
			continue
		}
		if Conflicts(candidate, a.Interval()) {
			return true, nil
		}
	}

	return false, nil
}

// Conflicts сообщает, конфликтуют ли два интервала.
// Интервалы, которые только касаются границей, не конфликтуют.
// Полностью совпадающие интервалы конфликтуют всегда, в том числе нулевой длины.
func Conflicts(candidate, existing domain.Interval) bool {
	if candidate.Start.Equal(existing.Start) && candidate.End.Equal(existing.End) {
		return true
	}
	return candidate.Start.Before(existing.End) && candidate.End.After(existing.Start)
}

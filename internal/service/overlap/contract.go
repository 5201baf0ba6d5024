package overlap

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AppointmentRepository источник всех сохраненных встреч
type AppointmentRepository interface {
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
}

package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

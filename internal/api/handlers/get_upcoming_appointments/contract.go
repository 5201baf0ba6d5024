package get_upcoming_appointments

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	Upcoming(ctx context.Context, req *models.UpcomingRequest) (*models.UpcomingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reference

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/reference/models"
)

type ReferenceService interface {
	Contacts(ctx context.Context) ([]models.ContactResponse, error)
	Users(ctx context.Context) ([]models.UserResponse, error)
	Countries(ctx context.Context) ([]models.CountryResponse, error)
	Divisions(ctx context.Context, countryID int64) ([]models.DivisionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	CountByTypeAndMonth(ctx context.Context, appointmentType string, month time.Month, timeZone string) (int, error)
	CountByTypePerMonth(ctx context.Context, year int, timeZone string) ([]domain.TypeMonthCount, error)
}

// ContactRepository интерфейс репозитория контактов
type ContactRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	GetAll(ctx context.Context) ([]*domain.Contact, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	CountByCountry(ctx context.Context, countryID int64) (int, error)
}

// LocationRepository интерфейс репозитория стран
type LocationRepository interface {
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

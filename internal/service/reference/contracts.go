package reference

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ContactRepository интерфейс репозитория контактов
type ContactRepository interface {
	GetAll(ctx context.Context) ([]*domain.Contact, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
}

// LocationRepository интерфейс репозитория стран и регионов
type LocationRepository interface {
	GetCountries(ctx context.Context) ([]*domain.Country, error)
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	GetDivisionsByCountry(ctx context.Context, countryID int64) ([]*domain.Division, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

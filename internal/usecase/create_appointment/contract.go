package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ContactRepository интерфейс репозитория контактов
type ContactRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
}

// OverlapChecker проверка пересечения встреч одного клиента
type OverlapChecker interface {
	HasOverlap(ctx context.Context, customerID, appointmentID int64, start, end time.Time) (bool, error)
}

// BusinessHours проверка попадания интервала в рабочие часы
type BusinessHours interface {
	Contains(start, end time.Time) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учет отклоненных из-за пересечения встреч
type MetricsRecorder interface {
	RecordOverlap(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

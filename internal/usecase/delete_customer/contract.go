package delete_customer

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	CountByCustomerID(ctx context.Context, customerID int64) (int, error)
	DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

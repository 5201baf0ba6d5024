package get_customer

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
)

type CustomerService interface {
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

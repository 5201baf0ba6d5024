package delete_customer

import (
	"context"

	deleteCustomer "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_customer"
)

type DeleteCustomerUseCase interface {
	Execute(ctx context.Context, req *deleteCustomer.Request) (*deleteCustomer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

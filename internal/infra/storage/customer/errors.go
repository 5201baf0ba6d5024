package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrDivisionNotFound возвращается, когда указанный регион не существует
	ErrDivisionNotFound = errors.New("customer.repository: division not found")

	// ErrHasAppointments возвращается при удалении клиента, у которого остались встречи
	ErrHasAppointments = errors.New("customer.repository: customer has appointments")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)

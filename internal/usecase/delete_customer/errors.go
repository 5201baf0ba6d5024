package delete_customer

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_customer: invalid input data")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("delete_customer: customer not found")

	// ErrHasAppointments возвращается, когда у клиента есть встречи, а их удаление не подтверждено
	ErrHasAppointments = errors.New("delete_customer: customer has appointments")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_customer: internal error")
)

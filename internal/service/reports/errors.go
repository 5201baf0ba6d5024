package reports

import "errors"

var (
	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("contact not found")

	// ErrCountryNotFound возвращается, когда страна не найдена
	ErrCountryNotFound = errors.New("country not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

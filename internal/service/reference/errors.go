package reference

import "errors"

var (
	// ErrCountryNotFound возвращается, когда страна не найдена
	ErrCountryNotFound = errors.New("country not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

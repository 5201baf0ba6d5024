package get_time_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrUnknownTimeZone возвращается, если часовой пояс клиента не найден
	ErrUnknownTimeZone = errors.New("get_time_slots: unknown time zone")
)

package slots

import "errors"

var (
	// ErrInvalidHours возвращается, когда рабочее окно пустое или задано некорректно
	ErrInvalidHours = errors.New("slots: invalid business hours")

	// ErrUnknownTimeZone возвращается, когда не удалось загрузить опорный часовой пояс
	ErrUnknownTimeZone = errors.New("slots: unknown time zone")
)

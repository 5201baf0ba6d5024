package update_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInvalidTimeRange возвращается, когда окончание встречи не позже начала
	ErrInvalidTimeRange = errors.New("update_appointment: end must be after start")

	// ErrOutsideBusinessHours возвращается, когда встреча выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("update_appointment: appointment is outside business hours")

	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("update_appointment: customer not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("update_appointment: user not found")

	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("update_appointment: contact not found")

	// ErrOverlap возвращается, когда встреча пересекается с другой встречей клиента
	ErrOverlap = errors.New("update_appointment: appointment overlaps an existing appointment of the customer")

	// ErrBusy возвращается, когда сохранение не удалось из-за параллельных изменений
	ErrBusy = errors.New("update_appointment: concurrent modification, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

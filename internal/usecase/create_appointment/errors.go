package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidTimeRange возвращается, когда окончание встречи не позже начала
	ErrInvalidTimeRange = errors.New("create_appointment: end must be after start")

	// ErrOutsideBusinessHours возвращается, когда встреча выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_appointment: appointment is outside business hours")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("create_appointment: contact not found")

	// ErrOverlap возвращается, когда встреча пересекается с другой встречей клиента
	ErrOverlap = errors.New("create_appointment: appointment overlaps an existing appointment of the customer")

	// ErrBusy возвращается, когда сохранение не удалось из-за параллельных изменений
	ErrBusy = errors.New("create_appointment: concurrent modification, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

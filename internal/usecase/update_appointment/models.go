package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на изменение встречи. Все поля встречи заменяются целиком.
type Request struct {
	Session       domain.Session
	AppointmentID int64

	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time

	CustomerID int64
	UserID     int64
	ContactID  int64
}

// Response модель ответа с измененной встречей
type Response struct {
	Appointment *domain.Appointment
}

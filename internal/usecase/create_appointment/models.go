package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на создание встречи
type Request struct {
	Session domain.Session // Пользователь, от имени которого выполняется запрос

	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time

	CustomerID int64
	UserID     int64 // Пользователь, назначенный на встречу
	ContactID  int64
}

// Response модель ответа с созданной встречей
type Response struct {
	Appointment *domain.Appointment
}

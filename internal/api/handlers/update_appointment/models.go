package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model. Встреча заменяется целиком.
type UpdateAppointmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	ContactID   int64  `json:"contactId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(session domain.Session, appointmentID int64) (*updateAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &updateAppointment.Request{
		Session:       session,
		AppointmentID: appointmentID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		Type:          r.Type,
		Start:         start,
		End:           end,
		CustomerID:    r.CustomerID,
		UserID:        r.UserID,
		ContactID:     r.ContactID,
	}, nil
}

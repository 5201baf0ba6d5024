package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"` // "2024-06-12T10:00:00-04:00"
	End         string `json:"end"`
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	ContactID   int64  `json:"contactId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(session domain.Session) (*createAppointment.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Session:     session,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Start:       start,
		End:         end,
		CustomerID:  r.CustomerID,
		UserID:      r.UserID,
		ContactID:   r.ContactID,
	}, nil
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var (
	// ErrInvalidRange возвращается при неизвестном периоде выборки
	ErrInvalidRange = errors.New("invalid range, expected all, week or month")
)

// Range период выборки встреч
type Range string

const (
	RangeAll   Range = "all"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// ParseRange конвертирует строку в Range; пустая строка означает все встречи
func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeWeek, RangeMonth:
		return r, nil
	default:
		return "", ErrInvalidRange
	}
}

// Request модели

// ListRequest запрос на получение списка встреч
type ListRequest struct {
	Range      Range
	CustomerID *int64
	ContactID  *int64
	UserID     *int64
	TimeZone   string // Часовой пояс клиента, в нем считаются границы недели и месяца
}

// UpcomingRequest запрос на получение ближайших встреч пользователя
type UpcomingRequest struct {
	UserID   int64
	Within   time.Duration
	TimeZone string
}

// Response модели

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"` // RFC 3339 в часовом поясе клиента
	End         string `json:"end"`

	CustomerID int64 `json:"customerId"`
	UserID     int64 `json:"userId"`
	ContactID  int64 `json:"contactId"`

	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	UpdatedAt     time.Time `json:"updatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// UpcomingResponse ответ с ближайшими встречами пользователя
type UpcomingResponse struct {
	UserID       int64                 `json:"userId"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// DeleteResponse ответ после удаления встречи
type DeleteResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO, время выводится в loc
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	return &AppointmentResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Location:      a.Location,
		Type:          a.Type,
		Start:         a.Start.In(loc).Format(time.RFC3339),
		End:           a.End.In(loc).Format(time.RFC3339),
		CustomerID:    a.CustomerID,
		UserID:        a.UserID,
		ContactID:     a.ContactID,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		UpdatedAt:     a.UpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a, loc); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

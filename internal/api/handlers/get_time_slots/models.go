package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
)

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	Time  string `json:"time"`  // RFC 3339 в часовом поясе клиента
	Label string `json:"label"` // "08:00 AM"
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date     string             `json:"date"`
	Kind     string             `json:"kind"`
	TimeZone string             `json:"timeZone"`
	Slots    []TimeSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = TimeSlotResponse{Time: s.Time.Format(time.RFC3339), Label: s.Label}
	}

	return &TimeSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Kind:     string(resp.Kind),
		TimeZone: resp.Location.String(),
		Slots:    slots,
	}
}

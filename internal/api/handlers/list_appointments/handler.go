package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidFilter   = "некорректный фильтр, ожидается all, week или month"
	msgInvalidID       = "некорректный ID в параметрах запроса"
	msgUnknownTimeZone = "неизвестный часовой пояс"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?filter=all|week|month&customerId=&contactId=&userId=&tz=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rng, err := models.ParseRange(query.Get("filter"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid filter: %q", query.Get("filter"))
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	req := &models.ListRequest{Range: rng, TimeZone: query.Get("tz")}
	for name, dst := range map[string]**int64{
		"customerId": &req.CustomerID,
		"contactId":  &req.ContactID,
		"userId":     &req.UserID,
	} {
		id, err := handlers.QueryID(r, name)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid %s: %q", name, query.Get(name))
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		*dst = id
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrUnknownTimeZone) {
			h.logger.Warn("GET /appointments - Unknown time zone: tz=%s", req.TimeZone)
			handlers.RespondBadRequest(w, msgUnknownTimeZone)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: filter=%s, error=%v", rng, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: filter=%s, count=%d", rng, len(list.Appointments))
	handlers.RespondJSON(w, http.StatusOK, list)
}

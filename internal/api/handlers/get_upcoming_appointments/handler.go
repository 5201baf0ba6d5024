package get_upcoming_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidUserID   = "некорректный ID пользователя"
	msgInvalidWindow   = "withinMinutes должен быть неотрицательным целым числом"
	msgUnknownTimeZone = "неизвестный часовой пояс"
)

type Handler struct {
	service       AppointmentService
	defaultWindow time.Duration
	logger        Logger
}

// NewHandler defaultWindow используется, если withinMinutes не передан
func NewHandler(service AppointmentService, defaultWindow time.Duration, logger Logger) *Handler {
	return &Handler{
		service:       service,
		defaultWindow: defaultWindow,
		logger:        logger,
	}
}

// Handle GET /api/v1/users/{userId}/appointments/upcoming?withinMinutes=15&tz=Area/City
// Используется клиентом сразу после входа, чтобы предупредить о ближайшей встрече
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{userId}/appointments/upcoming - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.UpcomingRequest{UserID: userID, Within: h.defaultWindow, TimeZone: r.URL.Query().Get("tz")}
	if raw := r.URL.Query().Get("withinMinutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			h.logger.Warn("GET /users/{userId}/appointments/upcoming - Invalid window: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		req.Within = time.Duration(minutes) * time.Minute
	}

	upcoming, err := h.service.Upcoming(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrUnknownTimeZone):
			h.logger.Warn("GET /users/{userId}/appointments/upcoming - Unknown time zone: tz=%s", req.TimeZone)
			handlers.RespondBadRequest(w, msgUnknownTimeZone)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/appointments/upcoming - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /users/{userId}/appointments/upcoming - Failed to get upcoming appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/appointments/upcoming - Upcoming appointments: user_id=%d, count=%d",
		userID, len(upcoming.Appointments))
	handlers.RespondJSON(w, http.StatusOK, upcoming)
}

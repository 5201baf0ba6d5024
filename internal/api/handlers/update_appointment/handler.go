package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID встречи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidInput         = "не заполнены обязательные поля встречи"
	msgInvalidTimeRange     = "окончание встречи должно быть позже начала"
	msgOutsideHours         = "встреча должна быть в пределах рабочего времени"
	msgAppointmentNotFound  = "встреча не найдена"
	msgCustomerNotFound     = "клиент не найден"
	msgUserNotFound         = "пользователь не найден"
	msgContactNotFound      = "контакт не найден"
	msgBusy                 = "встреча одновременно изменяется другим пользователем, повторите запрос"
	msgOverlap              = "у клиента уже есть встреча в это время"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{appointmentId} - Missing user session")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Invalid request body: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session, appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{appointmentId} - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrBusy):
			h.logger.Warn("PUT /appointments/{appointmentId} - Concurrent modification: %v", err)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrOverlap):
			h.logger.Warn("PUT /appointments/{appointmentId} - Overlap: appointment_id=%d, customer_id=%d", appointmentID, req.CustomerID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, updateAppointment.ErrInvalidTimeRange):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid time range: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{appointmentId} - Outside business hours: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{appointmentId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrCustomerNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, updateAppointment.ErrUserNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, updateAppointment.ErrContactNotFound):
			h.logger.Warn("PUT /appointments/{appointmentId} - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		default:
			h.logger.Error("PUT /appointments/{appointmentId} - Failed to update appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{appointmentId} - Appointment updated successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment, useCaseReq.Start.Location()))
}

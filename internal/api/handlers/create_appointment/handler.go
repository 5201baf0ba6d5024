package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "не заполнены обязательные поля встречи"
	msgInvalidTimeRange   = "окончание встречи должно быть позже начала"
	msgOutsideHours       = "встреча должна быть в пределах рабочего времени"
	msgCustomerNotFound   = "клиент не найден"
	msgUserNotFound       = "пользователь не найден"
	msgContactNotFound    = "контакт не найден"
	msgBusy               = "встреча одновременно изменяется другим пользователем, повторите запрос"
	msgOverlap            = "у клиента уже есть встреча в это время"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user session")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrBusy):
			h.logger.Warn("POST /appointments - Concurrent modification: %v", err)
			w.Header().Set("Retry-After", "1")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		case errors.Is(err, createAppointment.ErrOverlap):
			h.logger.Warn("POST /appointments - Overlap: customer_id=%d", req.CustomerID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, createAppointment.ErrInvalidTimeRange):
			h.logger.Warn("POST /appointments - Invalid time range: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			h.logger.Warn("POST /appointments - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrContactNotFound):
			h.logger.Warn("POST /appointments - Contact not found: contact_id=%d", req.ContactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d",
		result.Appointment.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment, useCaseReq.Start.Location()))
}

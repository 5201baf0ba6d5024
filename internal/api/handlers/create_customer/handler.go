package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "все поля клиента обязательны и не должны превышать допустимую длину"
	msgDivisionNotFound   = "регион не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("POST /customers - Missing user session")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Create(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, customers.ErrDivisionNotFound):
			h.logger.Warn("POST /customers - Division not found: division_id=%d", req.DivisionID)
			handlers.RespondBadRequest(w, msgDivisionNotFound)

		default:
			h.logger.Error("POST /customers - Failed to create customer: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created successfully: customer_id=%d, user=%s", customer.ID, session.UserName)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}

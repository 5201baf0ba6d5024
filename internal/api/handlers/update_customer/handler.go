package update_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "все поля клиента обязательны и не должны превышать допустимую длину"
	msgCustomerNotFound   = "клиент не найден"
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

// Handle PUT /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("PUT /customers/{customerId} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("PUT /customers/{customerId} - Missing user session")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{customerId} - Invalid request body: customer_id=%d, error=%v", customerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Update(r.Context(), session, customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /customers/{customerId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /customers/{customerId} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, customers.ErrDivisionNotFound):
			h.logger.Warn("PUT /customers/{customerId} - Division not found: division_id=%d", req.DivisionID)
			handlers.RespondBadRequest(w, msgDivisionNotFound)

		default:
			h.logger.Error("PUT /customers/{customerId} - Failed to update customer: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /customers/{customerId} - Customer updated successfully: customer_id=%d, user=%s", customerID, session.UserName)
	handlers.RespondJSON(w, http.StatusOK, customer)
}

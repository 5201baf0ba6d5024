package get_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgNotFound          = "клиент не найден"
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

// Handle GET /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("GET /customers/{customerId} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	customer, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			h.logger.Warn("GET /customers/{customerId} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /customers/{customerId} - Failed to get customer: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, customer)
}

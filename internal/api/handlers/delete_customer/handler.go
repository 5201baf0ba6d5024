package delete_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	deleteCustomer "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_customer"
)

const (
	msgInvalidCustomerID       = "некорректный ID клиента"
	msgInvalidConfirmation     = "параметр withAppointments должен быть true или false"
	msgCustomerNotFound        = "клиент не найден"
	msgCustomerHasAppointments = "у клиента есть встречи, подтвердите их удаление параметром withAppointments=true"
)

type Handler struct {
	useCase DeleteCustomerUseCase
	logger  Logger
}

func NewHandler(useCase DeleteCustomerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/customers/{customerId}?withAppointments=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("DELETE /customers/{customerId} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	withAppointments := false
	if raw := r.URL.Query().Get("withAppointments"); raw != "" {
		withAppointments, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("DELETE /customers/{customerId} - Invalid withAppointments: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidConfirmation)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &deleteCustomer.Request{
		CustomerID:         customerID,
		DeleteAppointments: withAppointments,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteCustomer.ErrCustomerNotFound):
			h.logger.Warn("DELETE /customers/{customerId} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, deleteCustomer.ErrHasAppointments):
			h.logger.Warn("DELETE /customers/{customerId} - Customer has appointments: customer_id=%d", customerID)
			handlers.RespondConflict(w, msgCustomerHasAppointments)

		case errors.Is(err, deleteCustomer.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCustomerID)

		default:
			h.logger.Error("DELETE /customers/{customerId} - Failed to delete customer: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /customers/{customerId} - Customer deleted: customer_id=%d, appointments=%d",
		customerID, result.DeletedAppointments)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

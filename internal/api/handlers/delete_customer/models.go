package delete_customer

import deleteCustomer "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_customer"

// DeleteCustomerResponse HTTP response model
type DeleteCustomerResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	DeletedAppointments int64  `json:"deletedAppointments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *deleteCustomer.Response) *DeleteCustomerResponse {
	return &DeleteCustomerResponse{
		ID:                  resp.CustomerID,
		Name:                resp.CustomerName,
		DeletedAppointments: resp.DeletedAppointments,
	}
}

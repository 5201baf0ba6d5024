package delete_customer

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
)

// UseCase use case для удаления клиента вместе с его встречами
type UseCase struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute удаляет клиента. Встречи клиента удаляются в той же транзакции,
// поэтому клиент без встреч или встречи без клиента не остаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteCustomer: customer=%d, deleteAppointments=%t", req.CustomerID, req.DeleteAppointments)

	// 1. Валидация входных данных
	if req.CustomerID <= 0 {
		uc.logger.Warn("DeleteCustomer: invalid customer id=%d", req.CustomerID)
		return nil, fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	resp := &Response{CustomerID: req.CustomerID}

	// 2. Удаляем встречи и клиента в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем, что клиент существует
		customer, err := uc.customerRepo.GetByID(txCtx, req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("DeleteCustomer: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("DeleteCustomer: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		resp.CustomerName = customer.Name

		// 2.2. Без подтверждения удалять клиента со встречами нельзя
		if !req.DeleteAppointments {
			count, err := uc.appointmentRepo.CountByCustomerID(txCtx, req.CustomerID)
			if err != nil {
				uc.logger.Error("DeleteCustomer: failed to count appointments: %v", err)
				return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
			}
			if count > 0 {
				uc.logger.Warn("DeleteCustomer: customer id=%d has %d appointments", req.CustomerID, count)
				return ErrHasAppointments
			}
		}

		// 2.3. Удаляем встречи клиента
		deleted, err := uc.appointmentRepo.DeleteByCustomerID(txCtx, req.CustomerID)
		if err != nil {
			uc.logger.Error("DeleteCustomer: failed to delete appointments: %v", err)
			return fmt.Errorf("%w: failed to delete appointments: %v", ErrInternal, err)
		}
		resp.DeletedAppointments = deleted

		// 2.4. Удаляем клиента
		if err := uc.customerRepo.Delete(txCtx, req.CustomerID); err != nil {
			switch {
			case errors.Is(err, customerRepo.ErrCustomerNotFound):
				return ErrCustomerNotFound
			case errors.Is(err, customerRepo.ErrHasAppointments):
				uc.logger.Warn("DeleteCustomer: appointments were added concurrently for customer id=%d", req.CustomerID)
				return ErrHasAppointments
			}
			uc.logger.Error("DeleteCustomer: failed to delete customer: %v", err)
			return fmt.Errorf("%w: failed to delete customer: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrHasAppointments) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("DeleteCustomer: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteCustomer: deleted customer id=%d with %d appointments", req.CustomerID, resp.DeletedAppointments)

	return resp, nil
}

package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает клиента от имени пользователя сессии
func (s *Service) Create(ctx context.Context, session domain.Session, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer name=%q, division=%d, by=%s", req.Name, req.DivisionID, session.UserName)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Customer
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.customerRepo.Create(txCtx, req.ToDomain(0, session.UserName))
		if err != nil {
			return err
		}
		// Перечитываем, чтобы вернуть названия региона и страны
		result, err = s.customerRepo.GetByID(txCtx, created.ID)
		return err
	})
	if err != nil {
		return nil, s.mapError("Create", err)
	}

	s.logger.Info("Create: customer id=%d created", result.ID)
	return models.FromDomainCustomer(result), nil
}

// Update изменяет все поля клиента
func (s *Service) Update(ctx context.Context, session domain.Session, id int64, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%d, by=%s", id, session.UserName)

	if id <= 0 {
		return nil, fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Customer
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.customerRepo.Update(txCtx, req.ToDomain(id, session.UserName)); err != nil {
			return err
		}
		var err error
		result, err = s.customerRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	s.logger.Info("Update: customer id=%d updated", id)
	return models.FromDomainCustomer(result), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", err)
	}
	return models.FromDomainCustomer(customer), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, s.mapError("List", err)
	}
	s.logger.Info("List: fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, customerRepo.ErrCustomerNotFound):
		s.logger.Warn("%s: customer not found", op)
		return ErrCustomerNotFound
	case errors.Is(err, customerRepo.ErrDivisionNotFound):
		s.logger.Warn("%s: division not found", op)
		return ErrDivisionNotFound
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

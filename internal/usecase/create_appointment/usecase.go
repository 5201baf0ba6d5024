package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	contactRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/contact"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ScheduleService/internal/service/overlap"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

const operation = "create"

// UseCase use case для создания встречи
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	userRepo        UserRepository
	contactRepo     ContactRepository
	checker         OverlapChecker
	hours           BusinessHours
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	userRepo UserRepository,
	contactRepo ContactRepository,
	checker OverlapChecker,
	hours BusinessHours,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		userRepo:        userRepo,
		contactRepo:     contactRepo,
		checker:         checker,
		hours:           hours,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания встречи.
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, user=%d, contact=%d, start=%s, end=%s, by=%s",
		req.CustomerID, req.UserID, req.ContactID, req.Start.UTC(), req.End.UTC(), req.Session.UserName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем рабочие часы
	if !uc.hours.Contains(req.Start, req.End) {
		uc.logger.Warn("CreateAppointment: interval %s - %s is outside business hours", req.Start.UTC(), req.End.UTC())
		return nil, ErrOutsideBusinessHours
	}

	// 3. Проверяем связанные сущности
	if err := uc.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 4. Проверка пересечений и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем конфликтующие встречи клиента
		conflict, err := uc.checker.HasOverlap(txCtx, req.CustomerID, overlap.NewAppointmentID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if conflict {
			uc.metrics.RecordOverlap(operation)
			uc.logger.Warn("CreateAppointment: customer=%d already has an appointment in %s - %s",
				req.CustomerID, req.Start.UTC(), req.End.UTC())
			return ErrOverlap
		}

		// 4.2. Сохраняем встречу
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			Type:          req.Type,
			Start:         req.Start,
			End:           req.End,
			CustomerID:    req.CustomerID,
			UserID:        req.UserID,
			ContactID:     req.ContactID,
			CreatedBy:     req.Session.UserName,
			LastUpdatedBy: req.Session.UserName,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateAppointment: serialization conflict for customer=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: %w", ErrBusy, err)
		}
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

// checkReferences проверяет, что клиент, пользователь и контакт существуют
func (uc *UseCase) checkReferences(ctx context.Context, req *Request) error {
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
	}

	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}

	if _, err := uc.contactRepo.GetByID(ctx, req.ContactID); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			uc.logger.Warn("CreateAppointment: contact id=%d not found", req.ContactID)
			return ErrContactNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get contact id=%d: %v", req.ContactID, err)
		return fmt.Errorf("%w: failed to get contact: %w", ErrInternal, err)
	}

	return nil
}

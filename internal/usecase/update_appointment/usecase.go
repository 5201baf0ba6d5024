package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	contactRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/contact"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

const operation = "update"

// UseCase use case для изменения встречи
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

// Execute выполняет use case изменения встречи.
// Сама изменяемая встреча не считается конфликтом при проверке пересечений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, customer=%d, start=%s, end=%s, by=%s",
		req.AppointmentID, req.CustomerID, req.Start.UTC(), req.End.UTC(), req.Session.UserName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем рабочие часы
	if !uc.hours.Contains(req.Start, req.End) {
		uc.logger.Warn("UpdateAppointment: interval %s - %s is outside business hours", req.Start.UTC(), req.End.UTC())
		return nil, ErrOutsideBusinessHours
	}

	// 3. Проверяем, что встреча существует
	if _, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
	}

	// 4. Проверяем связанные сущности
	if err := uc.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 5. Проверка пересечений и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ищем конфликтующие встречи клиента, исключая текущую
		conflict, err := uc.checker.HasOverlap(txCtx, req.CustomerID, req.AppointmentID, req.Start, req.End)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
		}
		if conflict {
			uc.metrics.RecordOverlap(operation)
			uc.logger.Warn("UpdateAppointment: customer=%d already has an appointment in %s - %s",
				req.CustomerID, req.Start.UTC(), req.End.UTC())
			return ErrOverlap
		}

		// 5.2. Сохраняем изменения
		updated, err := uc.appointmentRepo.Update(txCtx, &domain.Appointment{
			ID:            req.AppointmentID,
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			Type:          req.Type,
			Start:         req.Start,
			End:           req.End,
			CustomerID:    req.CustomerID,
			UserID:        req.UserID,
			ContactID:     req.ContactID,
			LastUpdatedBy: req.Session.UserName,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d was deleted concurrently", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment: %v", err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("UpdateAppointment: serialization conflict for customer=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: %w", ErrBusy, err)
		}
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("UpdateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

// checkReferences проверяет, что клиент, пользователь и контакт существуют
func (uc *UseCase) checkReferences(ctx context.Context, req *Request) error {
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("UpdateAppointment: customer id=%d not found", req.CustomerID)
			return ErrCustomerNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return fmt.Errorf("%w: failed to get customer: %w", ErrInternal, err)
	}

	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateAppointment: user id=%d not found", req.UserID)
			return ErrUserNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}

	if _, err := uc.contactRepo.GetByID(ctx, req.ContactID); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			uc.logger.Warn("UpdateAppointment: contact id=%d not found", req.ContactID)
			return ErrContactNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get contact id=%d: %v", req.ContactID, err)
		return fmt.Errorf("%w: failed to get contact: %w", ErrInternal, err)
	}

	return nil
}

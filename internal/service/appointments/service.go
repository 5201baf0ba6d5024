package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления встреч
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	defaultZone     *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	defaultZone *time.Location,
	logger Logger,
) *Service {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		defaultZone:     defaultZone,
		logger:          logger,
	}
}

// GetByID получает встречу по ID, время выводится в часовом поясе timeZone
func (s *Service) GetByID(ctx context.Context, id int64, timeZone string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	loc, err := s.location(timeZone)
	if err != nil {
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment, loc), nil
}

// List получает встречи с фильтрацией по периоду и связанным сущностям.
// Неделя и месяц отсчитываются от текущего момента в часовом поясе клиента.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	loc, err := s.location(req.TimeZone)
	if err != nil {
		return nil, err
	}

	filter := domain.AppointmentFilter{
		CustomerID: req.CustomerID,
		ContactID:  req.ContactID,
		UserID:     req.UserID,
	}

	now := s.timeProvider.Now().In(loc)
	switch req.Range {
	case models.RangeAll, "":
	case models.RangeWeek:
		period := weekOf(now)
		filter.Period = &period
	case models.RangeMonth:
		period := monthOf(now)
		filter.Period = &period
	default:
		s.logger.Warn("List: invalid range=%s", req.Range)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidRange)
	}

	logMsg := fmt.Sprintf("List: fetching appointments, range=%s, tz=%s", req.Range, loc)
	if filter.CustomerID != nil {
		logMsg += fmt.Sprintf(", customer=%d", *filter.CustomerID)
	}
	if filter.ContactID != nil {
		logMsg += fmt.Sprintf(", contact=%d", *filter.ContactID)
	}
	if filter.UserID != nil {
		logMsg += fmt.Sprintf(", user=%d", *filter.UserID)
	}
	s.logger.Info(logMsg)

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return &models.AppointmentListResponse{
		Appointments: models.FromDomainAppointmentList(appointments, loc),
	}, nil
}

// Upcoming получает встречи пользователя, начинающиеся в ближайшие req.Within.
// Обе границы окна включаются.
func (s *Service) Upcoming(ctx context.Context, req *models.UpcomingRequest) (*models.UpcomingResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.Within < 0 {
		return nil, fmt.Errorf("%w: window must not be negative", ErrInvalidInput)
	}

	within := req.Within
	if within == 0 {
		within = domain.DefaultUpcomingWindow
	}

	loc, err := s.location(req.TimeZone)
	if err != nil {
		return nil, err
	}

	from := s.timeProvider.Now().In(loc)
	to := from.Add(within)

	s.logger.Info("Upcoming: fetching appointments for user=%d between %s and %s", req.UserID, from, to)

	appointments, err := s.appointmentRepo.GetUpcomingByUserID(ctx, req.UserID, from, to)
	if err != nil {
		s.logger.Error("Upcoming: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Upcoming - repository error: %v", ErrInternal, err)
	}

	return &models.UpcomingResponse{
		UserID:       req.UserID,
		From:         from.Format(time.RFC3339),
		To:           to.Format(time.RFC3339),
		Appointments: models.FromDomainAppointmentList(appointments, loc),
	}, nil
}

// Delete удаляет встречу и возвращает ее ID и тип
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	var resp *models.DeleteResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			return err
		}
		resp = &models.DeleteResponse{ID: appointment.ID, Type: appointment.Type}
		return nil
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d of type %q deleted", resp.ID, resp.Type)
	return resp, nil
}

func (s *Service) location(name string) (*time.Location, error) {
	if name == "" {
		return s.defaultZone, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		s.logger.Warn("unknown time zone %q: %v", name, err)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimeZone, name)
	}
	return loc, nil
}

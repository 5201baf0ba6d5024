package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	contactRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/contact"
	locationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	appointmentModels "github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/internal/service/reports/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Service отчеты по встречам и клиентам.
// Месяцы считаются в часовом поясе рабочих часов.
type Service struct {
	appointmentRepo AppointmentRepository
	contactRepo     ContactRepository
	customerRepo    CustomerRepository
	locationRepo    LocationRepository
	zone            *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	appointmentRepo AppointmentRepository,
	contactRepo ContactRepository,
	customerRepo CustomerRepository,
	locationRepo LocationRepository,
	zone *time.Location,
	logger Logger,
) *Service {
	if zone == nil {
		zone = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		contactRepo:     contactRepo,
		customerRepo:    customerRepo,
		locationRepo:    locationRepo,
		zone:            zone,
		logger:          logger,
	}
}

// AppointmentTypes возвращает все различные типы встреч
func (s *Service) AppointmentTypes(ctx context.Context) (*models.TypesResponse, error) {
	types, err := s.appointmentRepo.DistinctTypes(ctx)
	if err != nil {
		s.logger.Error("AppointmentTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: AppointmentTypes - repository error: %v", ErrInternal, err)
	}
	return &models.TypesResponse{Types: types}, nil
}

// CountByTypeAndMonth считает встречи указанного типа в указанном месяце любого года
func (s *Service) CountByTypeAndMonth(ctx context.Context, appointmentType string, month time.Month) (*models.TypeMonthCountResponse, error) {
	if strings.TrimSpace(appointmentType) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	count, err := s.appointmentRepo.CountByTypeAndMonth(ctx, appointmentType, month, s.zone.String())
	if err != nil {
		s.logger.Error("CountByTypeAndMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: CountByTypeAndMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CountByTypeAndMonth: type=%q, month=%s, count=%d", appointmentType, month, count)
	return models.NewTypeMonthCount(appointmentType, month, count), nil
}

// ContactSchedule возвращает все встречи контакта, время в часовом поясе loc
func (s *Service) ContactSchedule(ctx context.Context, contactID int64, loc *time.Location) (*models.ContactScheduleResponse, error) {
	if loc == nil {
		loc = s.zone
	}

	contact, err := s.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("ContactSchedule: contact id=%d not found", contactID)
			return nil, ErrContactNotFound
		}
		s.logger.Error("ContactSchedule: failed to get contact id=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: ContactSchedule - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{ContactID: ptr.Ptr(contactID)})
	if err != nil {
		s.logger.Error("ContactSchedule: failed to list appointments for contact id=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: ContactSchedule - repository error: %v", ErrInternal, err)
	}

	return &models.ContactScheduleResponse{
		ContactID:    contact.ID,
		ContactName:  contact.Name,
		Appointments: appointmentModels.FromDomainAppointmentList(appointments, loc),
	}, nil
}

// CustomersByCountry считает клиентов, зарегистрированных в стране
func (s *Service) CustomersByCountry(ctx context.Context, countryID int64) (*models.CountryCustomersResponse, error) {
	country, err := s.locationRepo.GetCountryByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrCountryNotFound) {
			s.logger.Warn("CustomersByCountry: country id=%d not found", countryID)
			return nil, ErrCountryNotFound
		}
		s.logger.Error("CustomersByCountry: failed to get country id=%d: %v", countryID, err)
		return nil, fmt.Errorf("%w: CustomersByCountry - repository error: %v", ErrInternal, err)
	}

	count, err := s.customerRepo.CountByCountry(ctx, countryID)
	if err != nil {
		s.logger.Error("CustomersByCountry: repository error: %v", err)
		return nil, fmt.Errorf("%w: CustomersByCountry - repository error: %v", ErrInternal, err)
	}

	return &models.CountryCustomersResponse{CountryID: country.ID, CountryName: country.Name, Customers: count}, nil
}

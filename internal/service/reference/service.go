package reference

import (
	"context"
	"errors"
	"fmt"

	locationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/reference/models"
)

// Service справочники: контакты, пользователи, страны и регионы
type Service struct {
	contactRepo  ContactRepository
	userRepo     UserRepository
	locationRepo LocationRepository
	logger       Logger
}

// NewService создает новый экземпляр справочного сервиса
func NewService(contactRepo ContactRepository, userRepo UserRepository, locationRepo LocationRepository, logger Logger) *Service {
	return &Service{
		contactRepo:  contactRepo,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Contacts возвращает все контакты
func (s *Service) Contacts(ctx context.Context) ([]models.ContactResponse, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Contacts: repository error: %v", err)
		return nil, fmt.Errorf("%w: Contacts - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainContacts(contacts), nil
}

// Users возвращает всех пользователей
func (s *Service) Users(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Users: repository error: %v", err)
		return nil, fmt.Errorf("%w: Users - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUsers(users), nil
}

// Countries возвращает все страны
func (s *Service) Countries(ctx context.Context) ([]models.CountryResponse, error) {
	countries, err := s.locationRepo.GetCountries(ctx)
	if err != nil {
		s.logger.Error("Countries: repository error: %v", err)
		return nil, fmt.Errorf("%w: Countries - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCountries(countries), nil
}

// Divisions возвращает регионы страны
func (s *Service) Divisions(ctx context.Context, countryID int64) ([]models.DivisionResponse, error) {
	if _, err := s.locationRepo.GetCountryByID(ctx, countryID); err != nil {
		if errors.Is(err, locationRepo.ErrCountryNotFound) {
			s.logger.Warn("Divisions: country id=%d not found", countryID)
			return nil, ErrCountryNotFound
		}
		s.logger.Error("Divisions: failed to get country id=%d: %v", countryID, err)
		return nil, fmt.Errorf("%w: Divisions - repository error: %v", ErrInternal, err)
	}

	divisions, err := s.locationRepo.GetDivisionsByCountry(ctx, countryID)
	if err != nil {
		s.logger.Error("Divisions: repository error for country id=%d: %v", countryID, err)
		return nil, fmt.Errorf("%w: Divisions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Divisions: fetched %d divisions for country id=%d", len(divisions), countryID)
	return models.FromDomainDivisions(divisions), nil
}

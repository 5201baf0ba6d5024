package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/service/reference/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type storeFake struct {
	err error
}

func (s storeFake) GetAll(context.Context) ([]*domain.Contact, error) {
	return []*domain.Contact{{ID: 1, Name: "Anika Costa", Email: "acoasta@company.com"}}, s.err
}

type usersFake struct{}

func (usersFake) GetAll(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: 1, UserName: "test"}, {ID: 2, UserName: "admin"}}, nil
}

type locationsFake struct{}

func (locationsFake) GetCountries(context.Context) ([]*domain.Country, error) {
	return []*domain.Country{{ID: 1, Name: "U.S"}}, nil
}

func (locationsFake) GetCountryByID(_ context.Context, id int64) (*domain.Country, error) {
	if id != 1 {
		return nil, locationRepo.ErrCountryNotFound
	}
	return &domain.Country{ID: 1, Name: "U.S"}, nil
}

func (locationsFake) GetDivisionsByCountry(_ context.Context, countryID int64) ([]*domain.Division, error) {
	return []*domain.Division{{ID: 29, Name: "Arizona", CountryID: countryID}}, nil
}

func TestReference(t *testing.T) {
	s := NewService(storeFake{}, usersFake{}, locationsFake{}, logger.NewNop())
	ctx := context.Background()

	contacts, err := s.Contacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anika Costa", contacts[0].Name)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	countries, err := s.Countries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CountryResponse{{ID: 1, Name: "U.S"}}, countries)

	divisions, err := s.Divisions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.DivisionResponse{{ID: 29, Name: "Arizona", CountryID: 1}}, divisions)
}

func TestDivisions_UnknownCountry(t *testing.T) {
	s := NewService(storeFake{}, usersFake{}, locationsFake{}, logger.NewNop())

	_, err := s.Divisions(context.Background(), 9)

	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestContacts_RepositoryError(t *testing.T) {
	s := NewService(storeFake{err: errors.New("db down")}, usersFake{}, locationsFake{}, logger.NewNop())

	_, err := s.Contacts(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

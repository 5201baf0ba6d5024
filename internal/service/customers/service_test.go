package customers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type repoFake struct {
	customers map[int64]*domain.Customer
	divisions map[int64]string
	nextID    int64
	err       error
}

func newRepo() *repoFake {
	return &repoFake{
		customers: map[int64]*domain.Customer{},
		divisions: map[int64]string{29: "Arizona", 101: "England"},
		nextID:    1,
	}
}

func (r *repoFake) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.divisions[c.DivisionID]; !ok {
		return nil, customerRepo.ErrDivisionNotFound
	}
	c.ID = r.nextID
	r.nextID++
	r.customers[c.ID] = c
	return c, nil
}

func (r *repoFake) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	withNames := *c
	withNames.DivisionName = r.divisions[c.DivisionID]
	return &withNames, nil
}

func (r *repoFake) GetAll(context.Context) ([]*domain.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		result = append(result, c)
	}
	return result, nil
}

func (r *repoFake) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	existing, ok := r.customers[c.ID]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	c.CreatedBy = existing.CreatedBy
	r.customers[c.ID] = c
	return c, nil
}

type txManagerFake struct{}

func (txManagerFake) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var session = domain.Session{UserID: 1, UserName: "test"}

func validRequest() *models.CustomerRequest {
	return &models.CustomerRequest{
		Name:       " Daddy Warbucks ",
		Address:    "1919 Boardwalk",
		PostalCode: "01291",
		Phone:      "869-908-1875",
		DivisionID: 29,
	}
}

func TestCreate(t *testing.T) {
	repo := newRepo()
	s := NewService(repo, txManagerFake{}, logger.NewNop())

	resp, err := s.Create(context.Background(), session, validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Daddy Warbucks", resp.Name)
	assert.Equal(t, "Arizona", resp.DivisionName)
	assert.Equal(t, "test", resp.CreatedBy)
}

func TestCreate_Validation(t *testing.T) {
	s := NewService(newRepo(), txManagerFake{}, logger.NewNop())

	tests := []struct {
		name   string
		mutate func(r *models.CustomerRequest)
	}{
		{name: "blank name", mutate: func(r *models.CustomerRequest) { r.Name = "   " }},
		{name: "missing phone", mutate: func(r *models.CustomerRequest) { r.Phone = "" }},
		{name: "long address", mutate: func(r *models.CustomerRequest) { r.Address = strings.Repeat("x", domain.MaxAddressLength+1) }},
		{name: "no division", mutate: func(r *models.CustomerRequest) { r.DivisionID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := s.Create(context.Background(), session, req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_UnknownDivision(t *testing.T) {
	s := NewService(newRepo(), txManagerFake{}, logger.NewNop())
	req := validRequest()
	req.DivisionID = 7

	_, err := s.Create(context.Background(), session, req)

	assert.ErrorIs(t, err, ErrDivisionNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newRepo()
	s := NewService(repo, txManagerFake{}, logger.NewNop())
	_, err := s.Create(context.Background(), session, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.DivisionID = 101
	resp, err := s.Update(context.Background(), domain.Session{UserID: 2, UserName: "admin"}, 1, req)

	require.NoError(t, err)
	assert.Equal(t, "England", resp.DivisionName)
	assert.Equal(t, "test", resp.CreatedBy)
	assert.Equal(t, "admin", resp.LastUpdateBy)

	_, err = s.Update(context.Background(), session, 42, validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("db down")
	s := NewService(repo, txManagerFake{}, logger.NewNop())

	_, err := s.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

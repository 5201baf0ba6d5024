package update_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/overlap"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

type appointmentRepoFake struct {
	stored    map[int64]*domain.Appointment
	updated   []*domain.Appointment
	updateErr error
}

func (f *appointmentRepoFake) GetAll(context.Context) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(f.stored))
	for _, a := range f.stored {
		result = append(result, a)
	}
	return result, nil
}

func (f *appointmentRepoFake) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.stored[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *appointmentRepoFake) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	a.CreatedBy = f.stored[a.ID].CreatedBy
	f.updated = append(f.updated, a)
	return a, nil
}

type customerRepoFake struct{ err error }

func (f customerRepoFake) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id}, f.err
}

type userRepoFake struct{}

func (userRepoFake) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

type contactRepoFake struct{}

func (contactRepoFake) GetByID(_ context.Context, id int64) (*domain.Contact, error) {
	return &domain.Contact{ID: id}, nil
}

type txManagerFake struct{}

func (txManagerFake) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type conflictingTxManager struct{}

func (conflictingTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: 3 attempts: %w", txmanager.ErrSerialization, &pq.Error{Code: "40001"})
}

type metricsFake struct{ overlaps []string }

func (m *metricsFake) RecordOverlap(operation string) {
	m.overlaps = append(m.overlaps, operation)
}

func ny(t *testing.T, h, m int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2024, time.June, 12, h, m, 0, 0, loc)
}

func setup(t *testing.T, stored ...*domain.Appointment) (*UseCase, *appointmentRepoFake, *metricsFake) {
	t.Helper()
	repo := &appointmentRepoFake{stored: map[int64]*domain.Appointment{}}
	for _, a := range stored {
		repo.stored[a.ID] = a
	}
	gen, err := slots.NewGenerator(domain.DefaultBusinessHours())
	require.NoError(t, err)
	m := &metricsFake{}
	uc := NewUseCase(repo, customerRepoFake{}, userRepoFake{}, contactRepoFake{},
		overlap.NewChecker(repo), gen, txManagerFake{}, m, logger.NewNop())
	return uc, repo, m
}

func request(t *testing.T, id int64, start, end time.Time) *Request {
	return &Request{
		Session:       domain.Session{UserID: 2, UserName: "admin"},
		AppointmentID: id,
		Title:         "Kickoff",
		Description:   "Project kickoff",
		Location:      "Phoenix",
		Type:          "Planning Session",
		Start:         start,
		End:           end,
		CustomerID:    1,
		UserID:        2,
		ContactID:     3,
	}
}

func TestExecute_MoveWithinOwnSlot(t *testing.T) {
	uc, repo, m := setup(t, &domain.Appointment{ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0), CreatedBy: "test"})

	resp, err := uc.Execute(context.Background(), request(t, 5, ny(t, 10, 30), ny(t, 11, 30)))

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Appointment.ID)
	assert.Equal(t, "admin", resp.Appointment.LastUpdatedBy)
	assert.Equal(t, "test", resp.Appointment.CreatedBy)
	assert.Len(t, repo.updated, 1)
	assert.Empty(t, m.overlaps)
}

func TestExecute_OverlapWithAnotherAppointment(t *testing.T) {
	uc, repo, m := setup(t,
		&domain.Appointment{ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0)},
		&domain.Appointment{ID: 6, CustomerID: 1, Start: ny(t, 12, 0), End: ny(t, 13, 0)},
	)

	_, err := uc.Execute(context.Background(), request(t, 5, ny(t, 11, 30), ny(t, 12, 30)))

	assert.ErrorIs(t, err, ErrOverlap)
	assert.Empty(t, repo.updated)
	assert.Equal(t, []string{"update"}, m.overlaps)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), request(t, 42, ny(t, 10, 0), ny(t, 11, 0)))

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_DeletedDuringUpdate(t *testing.T) {
	uc, repo, _ := setup(t, &domain.Appointment{ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0)})
	repo.updateErr = appointmentRepo.ErrAppointmentNotFound

	_, err := uc.Execute(context.Background(), request(t, 5, ny(t, 10, 0), ny(t, 11, 0)))

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, repo, _ := setup(t, &domain.Appointment{ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0)})

	_, err := uc.Execute(context.Background(), request(t, 0, ny(t, 10, 0), ny(t, 11, 0)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), request(t, 5, ny(t, 11, 0), ny(t, 10, 0)))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), request(t, 5, ny(t, 6, 0), ny(t, 7, 0)))
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	assert.Empty(t, repo.updated)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	repo := &appointmentRepoFake{stored: map[int64]*domain.Appointment{
		5: {ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0)},
	}}
	gen, err := slots.NewGenerator(domain.DefaultBusinessHours())
	require.NoError(t, err)
	uc := NewUseCase(repo, customerRepoFake{err: customerRepo.ErrCustomerNotFound}, userRepoFake{}, contactRepoFake{},
		overlap.NewChecker(repo), gen, txManagerFake{}, &metricsFake{}, logger.NewNop())

	_, err = uc.Execute(context.Background(), request(t, 5, ny(t, 10, 0), ny(t, 11, 0)))

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_SerializationConflictIsRetryable(t *testing.T) {
	repo := &appointmentRepoFake{stored: map[int64]*domain.Appointment{
		5: {ID: 5, CustomerID: 1, Start: ny(t, 10, 0), End: ny(t, 11, 0)},
	}}
	gen, err := slots.NewGenerator(domain.DefaultBusinessHours())
	require.NoError(t, err)
	uc := NewUseCase(repo, customerRepoFake{}, userRepoFake{}, contactRepoFake{},
		overlap.NewChecker(repo), gen, conflictingTxManager{}, &metricsFake{}, logger.NewNop())

	_, err = uc.Execute(context.Background(), request(t, 5, ny(t, 10, 0), ny(t, 11, 0)))

	assert.ErrorIs(t, err, ErrBusy)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.updated)
}

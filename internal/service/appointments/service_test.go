package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type repoFake struct {
	stored     map[int64]*domain.Appointment
	lastFilter domain.AppointmentFilter
	from, to   time.Time
	err        error
	deleted    []int64
}

func (r *repoFake) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.stored[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *repoFake) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Appointment, 0, len(r.stored))
	for _, a := range r.stored {
		result = append(result, a)
	}
	return result, nil
}

func (r *repoFake) GetUpcomingByUserID(_ context.Context, _ int64, from, to time.Time) ([]*domain.Appointment, error) {
	r.from, r.to = from, to
	return nil, r.err
}

func (r *repoFake) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	delete(r.stored, id)
	return nil
}

type txManagerFake struct{}

func (txManagerFake) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newService(repo *repoFake, now time.Time) *Service {
	s := NewService(repo, txManagerFake{}, time.UTC, logger.NewNop())
	s.timeProvider = fixedTime{now: now}
	return s
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestWeekOf(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	// Wednesday
	now := time.Date(2024, time.January, 3, 15, 0, 0, 0, la)

	p := weekOf(now)

	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, la), p.From)
	assert.Equal(t, time.Date(2024, time.January, 7, 0, 0, 0, 0, la), p.To)
}

func TestWeekOf_Sunday(t *testing.T) {
	now := time.Date(2024, time.June, 9, 23, 59, 0, 0, time.UTC)

	p := weekOf(now)

	assert.Equal(t, time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), p.To)
}

func TestMonthOf_December(t *testing.T) {
	now := time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)

	p := monthOf(now)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.To)
}

func TestList_WeekInCallerZone(t *testing.T) {
	repo := &repoFake{stored: map[int64]*domain.Appointment{}}
	tokyo := mustLoad(t, "Asia/Tokyo")
	// Saturday 20:00 UTC is already Sunday in Tokyo
	s := newService(repo, time.Date(2024, time.June, 15, 20, 0, 0, 0, time.UTC))

	_, err := s.List(context.Background(), &models.ListRequest{Range: models.RangeWeek, TimeZone: "Asia/Tokyo"})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Period)
	assert.True(t, repo.lastFilter.Period.From.Equal(time.Date(2024, time.June, 16, 0, 0, 0, 0, tokyo)))
}

func TestList_FiltersAndConversion(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	start := time.Date(2024, time.June, 12, 14, 0, 0, 0, time.UTC)
	repo := &repoFake{stored: map[int64]*domain.Appointment{
		1: {ID: 1, Type: "De-Briefing", Start: start, End: start.Add(time.Hour), CustomerID: 4},
	}}
	s := newService(repo, start)

	resp, err := s.List(context.Background(), &models.ListRequest{
		Range:      models.RangeAll,
		CustomerID: ptr.Ptr(int64(4)),
		TimeZone:   ny.String(),
	})

	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.Period)
	assert.Equal(t, int64(4), *repo.lastFilter.CustomerID)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2024-06-12T10:00:00-04:00", resp.Appointments[0].Start)
}

func TestList_Errors(t *testing.T) {
	repo := &repoFake{}
	s := newService(repo, time.Now())

	_, err := s.List(context.Background(), &models.ListRequest{Range: "year"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.List(context.Background(), &models.ListRequest{TimeZone: "Atlantis/Capital"})
	assert.ErrorIs(t, err, ErrUnknownTimeZone)

	repo.err = errors.New("db down")
	_, err = s.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpcoming_DefaultWindow(t *testing.T) {
	repo := &repoFake{}
	now := time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC)
	s := newService(repo, now)

	resp, err := s.Upcoming(context.Background(), &models.UpcomingRequest{UserID: 1})

	require.NoError(t, err)
	assert.True(t, repo.from.Equal(now))
	assert.Equal(t, domain.DefaultUpcomingWindow, repo.to.Sub(repo.from))
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestUpcoming_InvalidInput(t *testing.T) {
	s := newService(&repoFake{}, time.Now())

	_, err := s.Upcoming(context.Background(), &models.UpcomingRequest{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Upcoming(context.Background(), &models.UpcomingRequest{UserID: 1, Within: -time.Minute})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &repoFake{stored: map[int64]*domain.Appointment{
		3: {ID: 3, Type: "Planning Session"},
	}}
	s := newService(repo, time.Now())

	resp, err := s.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, &models.DeleteResponse{ID: 3, Type: "Planning Session"}, resp)
	assert.Equal(t, []int64{3}, repo.deleted)

	_, err = s.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	s := newService(&repoFake{stored: map[int64]*domain.Appointment{}}, time.Now())

	_, err := s.GetByID(context.Background(), 1, "")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

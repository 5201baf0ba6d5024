package list_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type serviceFake struct {
	got *models.ListRequest
	err error
}

func (f *serviceFake) List(_ context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 1}}}, nil
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := &serviceFake{}

	w := get(NewHandler(svc, logger.NewNop()), "/api/v1/appointments?filter=week&customerId=4&tz=Europe/Paris")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RangeWeek, svc.got.Range)
	require.NotNil(t, svc.got.CustomerID)
	assert.Equal(t, int64(4), *svc.got.CustomerID)
	assert.Nil(t, svc.got.ContactID)
	assert.Nil(t, svc.got.UserID)
	assert.Equal(t, "Europe/Paris", svc.got.TimeZone)
}

func TestHandle_DefaultsToAll(t *testing.T) {
	svc := &serviceFake{}

	w := get(NewHandler(svc, logger.NewNop()), "/api/v1/appointments")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RangeAll, svc.got.Range)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&serviceFake{}, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/appointments?filter=year").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/appointments?contactId=-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(NewHandler(&serviceFake{err: appointments.ErrUnknownTimeZone}, logger.NewNop()), "/api/v1/appointments?tz=Nowhere").Code)
	assert.Equal(t, http.StatusInternalServerError, get(NewHandler(&serviceFake{err: appointments.ErrInternal}, logger.NewNop()), "/api/v1/appointments").Code)
}

package list_customers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/service/customers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type serviceFake struct {
	err error
}

func (f serviceFake) List(context.Context) (*models.CustomerListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.CustomerListResponse{Customers: []models.CustomerResponse{}}, nil
}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(serviceFake{}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"customers":[]}`, w.Body.String())

	w = httptest.NewRecorder()
	NewHandler(serviceFake{err: customers.ErrInternal}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

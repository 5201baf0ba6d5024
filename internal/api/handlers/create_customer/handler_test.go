package create_customer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/customers/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type serviceFake struct {
	session domain.Session
	err     error
}

func (f *serviceFake) Create(_ context.Context, session domain.Session, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	f.session = session
	if f.err != nil {
		return nil, f.err
	}
	return &models.CustomerResponse{ID: 11, Name: req.Name, CreatedBy: session.UserName}, nil
}

const body = `{"name":"Daddy Warbucks","address":"1919 Boardwalk","postalCode":"01291","phone":"869-908-1875","divisionId":29}`

func post(svc *serviceFake, payload string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader(payload))
	r = r.WithContext(middleware.WithSession(r.Context(), domain.Session{UserID: 2, UserName: "admin"}))
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &serviceFake{}

	w := post(svc, body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin", svc.session.UserName)
	assert.Contains(t, w.Body.String(), `"createdBy":"admin"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(&serviceFake{}, `{"name":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(&serviceFake{}, `{"unknown":"field"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(&serviceFake{err: customers.ErrInvalidInput}, body).Code)
	assert.Equal(t, http.StatusBadRequest, post(&serviceFake{err: customers.ErrDivisionNotFound}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, post(&serviceFake{err: customers.ErrInternal}, body).Code)
}

package delete_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type serviceFake struct{}

func (serviceFake) Delete(_ context.Context, id int64) (*models.DeleteResponse, error) {
	if id == 404 {
		return nil, appointments.ErrAppointmentNotFound
	}
	return &models.DeleteResponse{ID: id, Type: "De-Briefing"}, nil
}

func del(id string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"appointmentId": id})
	w := httptest.NewRecorder()
	NewHandler(serviceFake{}, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	w := del("7")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DeleteResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, models.DeleteResponse{ID: 7, Type: "De-Briefing"}, resp)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, del("404").Code)
	assert.Equal(t, http.StatusBadRequest, del("0").Code)
}

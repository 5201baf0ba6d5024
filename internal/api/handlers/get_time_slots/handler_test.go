package get_time_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	gen, err := slots.NewGenerator(domain.DefaultBusinessHours())
	require.NoError(t, err)
	return NewHandler(getTimeSlots.NewUseCase(gen, gen.Location(), logger.NewNop()), logger.NewNop())
}

func TestHandleStart(t *testing.T) {
	h := newHandler(t)
	w := httptest.NewRecorder()

	h.HandleStart(w, httptest.NewRequest(http.MethodGet, "/api/v1/time-slots/start?date=2024-03-04&tz=Europe/London", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TimeSlotsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "start", resp.Kind)
	assert.Equal(t, "Europe/London", resp.TimeZone)
	require.Len(t, resp.Slots, 56)
	assert.Equal(t, "2024-03-04T13:00:00Z", resp.Slots[0].Time)
	assert.Equal(t, "01:00 PM", resp.Slots[0].Label)
}

func TestHandleEnd(t *testing.T) {
	h := newHandler(t)
	w := httptest.NewRecorder()

	h.HandleEnd(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/time-slots/end?date=2024-06-12&start=2024-06-12T21:30:00-04:00", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TimeSlotsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "end", resp.Kind)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:45 PM", resp.Slots[0].Label)
}

func TestHandle_BadRequests(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name   string
		handle http.HandlerFunc
		url    string
	}{
		{name: "missing date", handle: h.HandleStart, url: "/api/v1/time-slots/start"},
		{name: "bad date", handle: h.HandleStart, url: "/api/v1/time-slots/start?date=12/06/2024"},
		{name: "unknown zone", handle: h.HandleStart, url: "/api/v1/time-slots/start?date=2024-06-12&tz=Mars/Base"},
		{name: "missing start", handle: h.HandleEnd, url: "/api/v1/time-slots/end?date=2024-06-12"},
		{name: "bad start", handle: h.HandleEnd, url: "/api/v1/time-slots/end?date=2024-06-12&start=10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handle(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

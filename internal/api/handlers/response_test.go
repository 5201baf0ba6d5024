package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anika"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Anika", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anika","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondConflict(w, "конфликт")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "конфликт"}, body)
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgInternalError)
}

func TestPathAndQueryID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/customers/12?contactId=3&userId=abc", nil)
	r = mux.SetURLVars(r, map[string]string{"customerId": "12"})

	id, err := PathID(r, "customerId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = PathID(r, "missing")
	assert.ErrorIs(t, err, ErrInvalidID)

	contactID, err := QueryID(r, "contactId")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *contactID)

	_, err = QueryID(r, "userId")
	assert.ErrorIs(t, err, ErrInvalidID)

	none, err := QueryID(r, "customerId")
	require.NoError(t, err)
	assert.Nil(t, none)
}

// Package reference отдает справочники для форм клиента: контакты, пользователи, страны и регионы
package reference

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	referenceService "github.com/m04kA/SMC-ScheduleService/internal/service/reference"
)

const (
	msgInvalidCountryID = "некорректный ID страны"
	msgCountryNotFound  = "страна не найдена"
)

type Handler struct {
	service ReferenceService
	logger  Logger
}

func NewHandler(service ReferenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleContacts GET /api/v1/contacts
func (h *Handler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.Contacts(r.Context())
	if err != nil {
		h.logger.Error("GET /contacts - Failed to list contacts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, contacts)
}

// HandleUsers GET /api/v1/users
func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Users(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, users)
}

// HandleCountries GET /api/v1/countries
func (h *Handler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(r.Context())
	if err != nil {
		h.logger.Error("GET /countries - Failed to list countries: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, countries)
}

// HandleDivisions GET /api/v1/countries/{countryId}/divisions
func (h *Handler) HandleDivisions(w http.ResponseWriter, r *http.Request) {
	countryID, err := handlers.PathID(r, "countryId")
	if err != nil {
		h.logger.Warn("GET /countries/{countryId}/divisions - Invalid country ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCountryID)
		return
	}

	divisions, err := h.service.Divisions(r.Context(), countryID)
	if err != nil {
		if errors.Is(err, referenceService.ErrCountryNotFound) {
			h.logger.Warn("GET /countries/{countryId}/divisions - Country not found: country_id=%d", countryID)
			handlers.RespondNotFound(w, msgCountryNotFound)
			return
		}
		h.logger.Error("GET /countries/{countryId}/divisions - Failed to list divisions: country_id=%d, error=%v", countryID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /countries/{countryId}/divisions - Divisions retrieved: country_id=%d, count=%d", countryID, len(divisions))
	handlers.RespondJSON(w, http.StatusOK, divisions)
}

// Package reports отдает отчеты по встречам и клиентам, в том числе выгрузку в xlsx
package reports

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	reportService "github.com/m04kA/SMC-ScheduleService/internal/service/reports"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	msgMissingType      = "не указан тип встречи"
	msgInvalidMonth     = "некорректный месяц, ожидается номер 1-12 или название"
	msgInvalidContactID = "некорректный ID контакта"
	msgInvalidCountryID = "некорректный ID страны"
	msgInvalidYear      = "некорректный год"
	msgUnknownTimeZone  = "неизвестный часовой пояс"
	msgContactNotFound  = "контакт не найден"
	msgCountryNotFound  = "страна не найдена"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	service ReportService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// HandleTypes GET /api/v1/reports/types
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.AppointmentTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/types - Failed to get types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, types)
}

// HandleTypeMonth GET /api/v1/reports/type-month?type=De-Briefing&month=3
func (h *Handler) HandleTypeMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	appointmentType := query.Get("type")
	if appointmentType == "" {
		h.logger.Warn("GET /reports/type-month - Missing type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	month, err := parseMonth(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /reports/type-month - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.CountByTypeAndMonth(r.Context(), appointmentType, month)
	if err != nil {
		h.respondError(w, "GET /reports/type-month", err)
		return
	}

	h.logger.Info("GET /reports/type-month - Report built: type=%s, month=%s, count=%d", appointmentType, month, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleContactSchedule GET /api/v1/reports/contacts/{contactId}/schedule?tz=Area/City
func (h *Handler) HandleContactSchedule(w http.ResponseWriter, r *http.Request) {
	contactID, err := handlers.PathID(r, "contactId")
	if err != nil {
		h.logger.Warn("GET /reports/contacts/{contactId}/schedule - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	var loc *time.Location
	if tz := r.URL.Query().Get("tz"); tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			h.logger.Warn("GET /reports/contacts/{contactId}/schedule - Unknown time zone: tz=%s", tz)
			handlers.RespondBadRequest(w, msgUnknownTimeZone)
			return
		}
	}

	schedule, err := h.service.ContactSchedule(r.Context(), contactID, loc)
	if err != nil {
		h.respondError(w, "GET /reports/contacts/{contactId}/schedule", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}

// HandleCountryCustomers GET /api/v1/reports/countries/{countryId}/customers
func (h *Handler) HandleCountryCustomers(w http.ResponseWriter, r *http.Request) {
	countryID, err := handlers.PathID(r, "countryId")
	if err != nil {
		h.logger.Warn("GET /reports/countries/{countryId}/customers - Invalid country ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCountryID)
		return
	}

	result, err := h.service.CustomersByCountry(r.Context(), countryID)
	if err != nil {
		h.respondError(w, "GET /reports/countries/{countryId}/customers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/v1/reports/export?year=2024
// Год по умолчанию текущий
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /reports/export - Invalid year: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	buf, err := h.service.ExportWorkbook(r.Context(), year)
	if err != nil {
		h.respondError(w, "GET /reports/export", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule-report-%d.xlsx"`, year))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /reports/export - Failed to write workbook: year=%d, error=%v", year, err)
		return
	}

	h.logger.Info("GET /reports/export - Workbook exported: year=%d", year)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reportService.ErrContactNotFound):
		h.logger.Warn("%s - Contact not found", route)
		handlers.RespondNotFound(w, msgContactNotFound)

	case errors.Is(err, reportService.ErrCountryNotFound):
		h.logger.Warn("%s - Country not found", route)
		handlers.RespondNotFound(w, msgCountryNotFound)

	case errors.Is(err, reportService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)

	default:
		h.logger.Error("%s - Failed to build report: error=%v", route, err)
		handlers.RespondInternalError(w)
	}
}

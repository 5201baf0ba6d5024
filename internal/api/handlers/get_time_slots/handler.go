package get_time_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStart    = "некорректное время начала, ожидается RFC 3339"
	msgMissingStart    = "не указано время начала"
	msgUnknownTimeZone = "неизвестный часовой пояс"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleStart GET /api/v1/time-slots/start?date=YYYY-MM-DD&tz=Area/City
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /time-slots/start - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	h.execute(w, r, "GET /time-slots/start", &getTimeSlots.Request{
		Date:     date,
		TimeZone: r.URL.Query().Get("tz"),
	})
}

// HandleEnd GET /api/v1/time-slots/end?date=YYYY-MM-DD&start=RFC3339&tz=Area/City
func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /time-slots/end - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if query.Get("start") == "" {
		h.logger.Warn("GET /time-slots/end - Missing start")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}
	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /time-slots/end - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	h.execute(w, r, "GET /time-slots/end", &getTimeSlots.Request{
		Date:     date,
		Start:    &start,
		TimeZone: query.Get("tz"),
	})
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *getTimeSlots.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrUnknownTimeZone):
			h.logger.Warn("%s - Unknown time zone: tz=%s", route, req.TimeZone)
			handlers.RespondBadRequest(w, msgUnknownTimeZone)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("%s - Invalid request: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("%s - Failed to get slots: error=%v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Slots generated: date=%s, count=%d", route, req.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

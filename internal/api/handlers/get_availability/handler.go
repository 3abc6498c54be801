package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/booking-engine/internal/api/handlers"
	getAvailability "github.com/venuebook/booking-engine/internal/usecase/get_availability"
)

const (
	msgInvalidHallID    = "invalid hall ID"
	msgInvalidTime      = "invalid start or end time, expected ISO-8601"
	msgInvalidInterval  = "end time must be after start time"
	msgHallNotFound     = "hall not found"
	msgStoreUnavailable = "booking service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability
// Query params: start, end (опционально, ISO-8601) — интервал-кандидат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(hallID, query.Get("start"), query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid candidate interval: hall_id=%d, error=%v", hallID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInterval):
			h.logger.Warn("GET /halls/{id}/availability - Invalid interval: hall_id=%d", hallID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidHallID)

		case errors.Is(err, getAvailability.ErrNetwork):
			h.logger.Error("GET /halls/{id}/availability - Store unavailable: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/availability - OK: hall_id=%d, occupied_dates=%d",
		hallID, len(result.OccupiedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

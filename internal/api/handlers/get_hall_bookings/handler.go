package get_hall_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/booking-engine/internal/api/handlers"
	bookingsService "github.com/venuebook/booking-engine/internal/service/bookings"
)

const (
	msgInvalidHallID    = "invalid hall ID"
	msgHallNotFound     = "hall not found"
	msgStoreUnavailable = "booking service is temporarily unavailable, please try again"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.GetHallBookings(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/bookings - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/bookings - Invalid input: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidHallID)

		case errors.Is(err, bookingsService.ErrNetwork):
			h.logger.Error("GET /halls/{id}/bookings - Store unavailable: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /halls/{id}/bookings - Failed: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/bookings - OK: hall_id=%d, bookings=%d", hallID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/venuebook/booking-engine/internal/api/handlers"
	"github.com/venuebook/booking-engine/internal/api/middleware"
	createBooking "github.com/venuebook/booking-engine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid start or end time, expected ISO-8601"
	msgInvalidInterval    = "end time must be after start time"
	msgPastDate           = "booking start cannot be in the past"
	msgCapacityExceeded   = "guest count is out of hall capacity"
	msgHallNotFound       = "hall not found"
	msgInFlight           = "a booking request is already being processed"
	msgStoreUnavailable   = "booking service is temporarily unavailable, please try again"
	msgUnauthorized       = "authentication required"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var slotErr *createBooking.SlotUnavailableError

		switch {
		case errors.As(err, &slotErr):
			// detail сервера или локальной проверки — дословно
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondConflict(w, slotErr.Detail)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Start in the past: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, hall_id=%d, guests=%d",
				userID, req.HallID, req.Guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /bookings - Submission in flight: user_id=%d", userID)
			handlers.RespondConflict(w, msgInFlight)

		case errors.Is(err, createBooking.ErrNetwork):
			h.logger.Error("POST /bookings - Booking store unavailable: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, ref=%s, user_id=%d, hall_id=%d",
		result.BookingID, result.BookingRef, userID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

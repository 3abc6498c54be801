package quote_booking

import (
	"errors"
	"net/http"

	"github.com/venuebook/booking-engine/internal/api/handlers"
	quoteBooking "github.com/venuebook/booking-engine/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPricing     = "invalid pricing parameters"
	msgHallNotFound       = "hall not found"
	msgCatalogUnavailable = "hall catalog is temporarily unavailable, please try again"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings/quote - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidPricingInput),
			errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid pricing input: hall_id=%d, hours=%d",
				req.HallID, req.Hours)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		case errors.Is(err, quoteBooking.ErrNetwork):
			h.logger.Error("POST /bookings/quote - Catalog unavailable: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote computed: hall_id=%d, hours=%d, total=%d",
		req.HallID, req.Hours, result.Pricing.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

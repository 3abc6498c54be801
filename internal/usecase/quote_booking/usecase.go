package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuebook/booking-engine/internal/domain"
	hallClient "github.com/venuebook/booking-engine/internal/integrations/hallservice"
)

// UseCase use case расчёта стоимости бронирования.
// Чистый расчёт поверх ставки зала из каталога; ничего не записывает.
type UseCase struct {
	hallClient HallServiceClient
	pricing    PricingPolicy
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hallClient HallServiceClient, pricing PricingPolicy, logger Logger) *UseCase {
	return &UseCase{
		hallClient: hallClient,
		pricing:    pricing,
		logger:     logger,
	}
}

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.HallID <= 0 {
		return nil, fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	hall, err := uc.hallClient.GetHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			uc.logger.Warn("QuoteBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrNetwork, err)
	}

	pricing, err := domain.ComputePrice(domain.PricingInput{
		HourlyRate:         hall.HourlyRatePaise(),
		DurationHours:      req.DurationHours,
		TaxRateBasisPoints: uc.pricing.TaxRateBasisPoints,
		ServiceFee:         uc.pricing.ServiceFee,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPricingInput) {
			uc.logger.Warn("QuoteBooking: invalid pricing input for hall=%d: %v", req.HallID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPricingInput, err)
		}
		return nil, err
	}

	uc.logger.Info("QuoteBooking: hall=%d, hours=%d, total=%s",
		req.HallID, req.DurationHours, pricing.Total)

	return &Response{
		HallID:        req.HallID,
		HallName:      hall.Name,
		HourlyRate:    hall.HourlyRatePaise(),
		DurationHours: req.DurationHours,
		Pricing:       pricing,
	}, nil
}

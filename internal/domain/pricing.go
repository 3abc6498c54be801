package domain

import (
	"errors"
	"fmt"

	"github.com/venuebook/booking-engine/pkg/money"
)

// ErrInvalidPricingInput возвращается при некорректных входных данных расчёта цены
var ErrInvalidPricingInput = errors.New("domain: invalid pricing input")

// PricingInput входные данные расчёта стоимости бронирования.
// Налоговая ставка задаётся в базисных пунктах (18% = 1800 bp), чтобы вся
// арифметика оставалась целочисленной.
type PricingInput struct {
	HourlyRate         money.Paise
	DurationHours      int
	TaxRateBasisPoints int64
	ServiceFee         money.Paise
}

// PricingResult breakdown of a booking price. Invariants:
//
//	Base  == HourlyRate * DurationHours (exact, no rounding)
//	Tax   == roundHalfUp(Base * taxRate)
//	Total == Base + Tax + ServiceFee
type PricingResult struct {
	Base       money.Paise
	Tax        money.Paise
	ServiceFee money.Paise
	Total      money.Paise
}

// ComputePrice рассчитывает стоимость бронирования. Чистая функция, без
// побочных эффектов.
func ComputePrice(in PricingInput) (PricingResult, error) {
	if in.HourlyRate <= 0 {
		return PricingResult{}, fmt.Errorf("%w: hourly rate must be positive", ErrInvalidPricingInput)
	}
	if in.DurationHours <= 0 {
		return PricingResult{}, fmt.Errorf("%w: duration must be positive", ErrInvalidPricingInput)
	}
	if in.TaxRateBasisPoints < 0 {
		return PricingResult{}, fmt.Errorf("%w: tax rate must not be negative", ErrInvalidPricingInput)
	}
	if in.ServiceFee < 0 {
		return PricingResult{}, fmt.Errorf("%w: service fee must not be negative", ErrInvalidPricingInput)
	}

	base := in.HourlyRate.MulInt(int64(in.DurationHours))
	tax := base.ApplyBasisPoints(in.TaxRateBasisPoints)

	return PricingResult{
		Base:       base,
		Tax:        tax,
		ServiceFee: in.ServiceFee,
		Total:      base + tax + in.ServiceFee,
	}, nil
}

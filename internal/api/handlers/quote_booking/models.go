package quote_booking

import (
	quoteBooking "github.com/venuebook/booking-engine/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	HallID int64 `json:"hall_id"`
	Hours  int   `json:"hours"`
}

// QuoteResponse HTTP response model.
// Все суммы в пайсах; formatted-поля — для прямого вывода в чеке.
type QuoteResponse struct {
	HallID         int64  `json:"hall_id"`
	HallName       string `json:"hall_name"`
	HourlyRate     int64  `json:"hourly_rate"`
	Hours          int    `json:"hours"`
	Base           int64  `json:"base"`
	Tax            int64  `json:"tax"`
	ServiceFee     int64  `json:"service_fee"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quoteBooking.Request {
	return &quoteBooking.Request{
		HallID:        r.HallID,
		DurationHours: r.Hours,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		HallID:         resp.HallID,
		HallName:       resp.HallName,
		HourlyRate:     int64(resp.HourlyRate),
		Hours:          resp.DurationHours,
		Base:           int64(resp.Pricing.Base),
		Tax:            int64(resp.Pricing.Tax),
		ServiceFee:     int64(resp.Pricing.ServiceFee),
		Total:          int64(resp.Pricing.Total),
		TotalFormatted: resp.Pricing.Total.FormatINR(),
	}
}

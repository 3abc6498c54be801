package create_booking

import (
	"time"

	createBooking "github.com/venuebook/booking-engine/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HallID    int64   `json:"hall_id"`
	StartTime string  `json:"start_time"` // ISO-8601, например "2026-09-12T10:00:00+05:30"
	EndTime   string  `json:"end_time"`   // ISO-8601
	Guests    int     `json:"guests"`
	Note      *string `json:"note,omitempty"`
}

// PricingBreakdown раскладка цены в пайсах.
// Суммы целочисленные: отображаемая и списываемая суммы совпадают.
type PricingBreakdown struct {
	Base           int64  `json:"base"`
	Tax            int64  `json:"tax"`
	ServiceFee     int64  `json:"service_fee"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"` // ₹ с индийской группировкой
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID  int64            `json:"booking_id"`
	BookingRef string           `json:"booking_ref"`
	HallID     int64            `json:"hall_id"`
	HallName   string           `json:"hall_name"`
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	Hours      int              `json:"hours"`
	Guests     int              `json:"guests"`
	Status     string           `json:"status"`
	Pricing    PricingBreakdown `json:"pricing"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		HallID:     r.HallID,
		Start:      start,
		End:        end,
		GuestCount: r.Guests,
		Note:       r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:  resp.BookingID,
		BookingRef: resp.BookingRef,
		HallID:     resp.HallID,
		HallName:   resp.HallName,
		StartTime:  resp.Start.Format(time.RFC3339),
		EndTime:    resp.End.Format(time.RFC3339),
		Hours:      resp.Hours,
		Guests:     resp.GuestCount,
		Status:     resp.Status,
		Pricing: PricingBreakdown{
			Base:           int64(resp.Pricing.Base),
			Tax:            int64(resp.Pricing.Tax),
			ServiceFee:     int64(resp.Pricing.ServiceFee),
			Total:          int64(resp.Pricing.Total),
			TotalFormatted: resp.Pricing.Total.FormatINR(),
		},
	}
}

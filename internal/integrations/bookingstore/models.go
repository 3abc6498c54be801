package bookingstore

import (
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
	"github.com/venuebook/booking-engine/pkg/money"
)

// BookingDTO запись бронирования из Booking Store
// Времена приходят в ISO-8601.
type BookingDTO struct {
	ID        int64     `json:"id"`
	HallID    int64     `json:"hall_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain конвертирует DTO в доменную модель.
// Возвращает false, если запись некорректна (start >= end или неизвестный
// статус) — такие записи пропускаются и логируются, но не роняют выборку.
func (d *BookingDTO) ToDomain() (domain.Booking, bool) {
	status := domain.BookingStatus(d.Status)
	if !status.IsKnown() {
		return domain.Booking{}, false
	}

	interval, err := domain.NewTimeInterval(d.StartTime, d.EndTime)
	if err != nil {
		return domain.Booking{}, false
	}

	return domain.Booking{
		ID:        d.ID,
		HallID:    d.HallID,
		Interval:  interval,
		Status:    status,
		CreatedAt: d.CreatedAt,
	}, true
}

// CreateBookingRequest тело запроса POST /bookings/create
type CreateBookingRequest struct {
	HallID     int64   `json:"hall_id"`
	Date       string  `json:"date"`     // ISO-8601 начало бронирования
	Duration   int     `json:"duration"` // длительность в часах
	Guests     int     `json:"guests"`
	Note       *string `json:"note,omitempty"`
	TotalPrice int64   `json:"total_price"` // в пайсах
}

// CreateBookingResponse ответ Booking Store на создание бронирования
type CreateBookingResponse struct {
	Success    bool   `json:"success"`
	BookingID  int64  `json:"booking_id"`
	BookingRef string `json:"booking_ref"`
}

// ErrorResponse модель ошибки от Booking Store.
// Поле detail показывается пользователю без изменений.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewCreateBookingRequest собирает тело запроса из доменной модели
func NewCreateBookingRequest(req *domain.BookingRequest, total money.Paise) CreateBookingRequest {
	return CreateBookingRequest{
		HallID:     req.HallID,
		Date:       req.Interval.Start.Format(time.RFC3339),
		Duration:   req.Interval.DurationHours(),
		Guests:     req.GuestCount,
		Note:       req.Note,
		TotalPrice: int64(total),
	}
}

package get_hall_bookings

import (
	"time"

	"github.com/venuebook/booking-engine/internal/service/bookings/models"
)

// BookingItem модель бронирования в списке
type BookingItem struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Blocks    bool   `json:"blocks"` // занимает ли бронирование слот
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	HallID   int64         `json:"hall_id"`
	Bookings []BookingItem `json:"bookings"`
}

// FromServiceResponse конвертирует представление сервиса в HTTP response
func FromServiceResponse(view *models.BookingListView) *BookingListResponse {
	items := make([]BookingItem, len(view.Bookings))
	for i, b := range view.Bookings {
		items[i] = BookingItem{
			ID:        b.ID,
			StartTime: b.StartTime.Format(time.RFC3339),
			EndTime:   b.EndTime.Format(time.RFC3339),
			Status:    b.Status,
			Blocks:    b.Blocks,
		}
	}

	return &BookingListResponse{
		HallID:   view.HallID,
		Bookings: items,
	}
}

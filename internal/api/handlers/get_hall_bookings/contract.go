package get_hall_bookings

import (
	"context"

	"github.com/venuebook/booking-engine/internal/service/bookings/models"
)

type BookingsService interface {
	GetHallBookings(ctx context.Context, hallID int64) (*models.BookingListView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

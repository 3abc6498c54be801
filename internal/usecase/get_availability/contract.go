package get_availability

import (
	"context"
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// BookingStoreClient интерфейс клиента Booking Store
type BookingStoreClient interface {
	GetHallBookings(ctx context.Context, hallID int64) ([]domain.Booking, error)
}

// SnapshotStore интерфейс снапшота бронирований
type SnapshotStore interface {
	Replace(hallID int64, bookings []domain.Booking, fetchedAt time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsKnown reports whether the status is one of the recognised values.
func (s BookingStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking represents an existing reservation of a hall, as reported by the
// Booking Store. The engine only reads bookings; status transitions happen
// server-side.
type Booking struct {
	ID       int64
	HallID   int64
	Interval TimeInterval
	Status   BookingStatus

	CreatedAt time.Time
}

// Blocks reports whether the booking occupies its time slot.
// Only pending and confirmed bookings block new reservations; cancelled and
// completed ones never do.
func (b *Booking) Blocks() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingRequest модель запроса на бронирование, собранная из состояния
// виджета. Не сохраняется после отправки в Booking Store.
type BookingRequest struct {
	HallID     int64
	Interval   TimeInterval
	GuestCount int
	Note       *string
}

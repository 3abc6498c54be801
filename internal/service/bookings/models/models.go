package models

import (
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// BookingView типизированное представление бронирования для календаря.
// Явный маппинг из доменной модели — страницы не перекраивают ответы
// внешнего API на месте.
type BookingView struct {
	ID        int64
	HallID    int64
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Blocks    bool // Занимает ли бронирование слот (pending/confirmed)
}

// BookingListView список бронирований зала
type BookingListView struct {
	HallID   int64
	Bookings []BookingView
}

// FromDomainBooking конвертирует доменную модель в представление
func FromDomainBooking(b *domain.Booking) BookingView {
	return BookingView{
		ID:        b.ID,
		HallID:    b.HallID,
		StartTime: b.Interval.Start,
		EndTime:   b.Interval.End,
		Status:    string(b.Status),
		Blocks:    b.Blocks(),
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(hallID int64, list []domain.Booking) *BookingListView {
	views := make([]BookingView, len(list))
	for i := range list {
		views[i] = FromDomainBooking(&list[i])
	}
	return &BookingListView{HallID: hallID, Bookings: views}
}

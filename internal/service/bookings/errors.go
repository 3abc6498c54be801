package bookings

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("bookings service: hall not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings service: invalid input data")

	// ErrNetwork возвращается при недоступности Booking Store
	ErrNetwork = errors.New("bookings service: booking store unavailable")
)

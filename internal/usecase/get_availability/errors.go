package get_availability

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("get_availability: hall not found")

	// ErrInvalidInterval возвращается при некорректном интервале-кандидате
	ErrInvalidInterval = errors.New("get_availability: interval start must be before end")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrNetwork возвращается при недоступности Booking Store
	ErrNetwork = errors.New("get_availability: booking store unavailable")
)

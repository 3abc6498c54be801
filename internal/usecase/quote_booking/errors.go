package quote_booking

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("quote_booking: hall not found")

	// ErrInvalidPricingInput возвращается при некорректных входных данных расчёта
	ErrInvalidPricingInput = errors.New("quote_booking: invalid pricing input")

	// ErrInvalidInput возвращается при некорректных входных данных запроса
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrNetwork возвращается при недоступности каталога залов
	ErrNetwork = errors.New("quote_booking: hall catalog unavailable")
)

package hallservice

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall not found")

	// ErrNetwork возвращается при транспортных ошибках и недоступности сервиса
	ErrNetwork = errors.New("hallservice client: network error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hallservice client: invalid response")
)

package bookingstore

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден в Booking Store
	ErrHallNotFound = errors.New("hall not found")

	// ErrSlotTaken возвращается, когда Booking Store отклонил бронирование
	// из-за конфликта слота (проигрыш гонки серверной проверке)
	ErrSlotTaken = errors.New("time slot not available")

	// ErrUnauthorized возвращается, когда Booking Store отклонил запрос
	// из-за отсутствия или некорректности идентичности пользователя
	ErrUnauthorized = errors.New("bookingstore client: unauthorized")

	// ErrNetwork возвращается при транспортных ошибках и недоступности сервиса
	ErrNetwork = errors.New("bookingstore client: network error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingstore client: invalid response")
)

package create_booking

import "errors"

var (
	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = errors.New("create_booking: interval start must be before end")

	// ErrPastDate возвращается, когда начало бронирования в прошлом
	// относительно момента отправки
	ErrPastDate = errors.New("create_booking: booking start is in the past")

	// ErrCapacityExceeded возвращается, когда число гостей меньше 1 или
	// превышает вместимость зала
	ErrCapacityExceeded = errors.New("create_booking: guest count out of hall capacity")

	// ErrSlotUnavailable возвращается при конфликте слота — как по клиентской
	// предварительной проверке, так и по отказу Booking Store (проигрыш гонки)
	ErrSlotUnavailable = errors.New("create_booking: time slot not available")

	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая отправка этого пользователя ещё в полёте
	ErrSubmissionInFlight = errors.New("create_booking: submission already in flight")

	// ErrNetwork возвращается при недоступности Booking Store: попытка
	// терминальна, пользователь повторяет вручную по свежим данным
	ErrNetwork = errors.New("create_booking: booking store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotUnavailableError конфликт слота с пользовательским сообщением.
// Detail показывается пользователю дословно независимо от происхождения
// конфликта — клиентская проверка и серверный отказ неразличимы для UI.
type SlotUnavailableError struct {
	Detail string
}

func (e *SlotUnavailableError) Error() string {
	return "create_booking: slot unavailable: " + e.Detail
}

// Is позволяет errors.Is(err, ErrSlotUnavailable)
func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

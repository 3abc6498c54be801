package create_booking

import (
	"fmt"
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Порядок проверок бизнес-правил (интервал → прошлое → вместимость →
// пересечение) детерминирован и закреплён в Execute; здесь только базовая
// проверка формы запроса.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateInterval строит интервал бронирования и проверяет его длительность
func validateInterval(start, end time.Time) (domain.TimeInterval, error) {
	interval, err := domain.NewTimeInterval(start, end)
	if err != nil {
		return domain.TimeInterval{}, ErrInvalidInterval
	}

	hours := interval.DurationHours()
	if hours < domain.MinDurationHours || hours > domain.MaxDurationHours {
		return domain.TimeInterval{}, fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	return interval, nil
}

// validateNotInPast проверяет, что начало бронирования не в прошлом
// относительно момента отправки
func validateNotInPast(interval domain.TimeInterval, now time.Time) error {
	if interval.Start.Before(now) {
		return ErrPastDate
	}
	return nil
}

// validateCapacity проверяет число гостей против вместимости зала
func validateCapacity(guestCount, capacity int) error {
	if guestCount < domain.MinGuestCount || guestCount > capacity {
		return fmt.Errorf("%w: guests=%d, capacity=%d", ErrCapacityExceeded, guestCount, capacity)
	}
	return nil
}

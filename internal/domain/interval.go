package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidInterval возвращается, когда начало интервала не раньше его конца
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// TimeInterval represents a half-open time interval [Start, End).
// Invariant: Start < End. Construct via NewTimeInterval; a zero value is
// not a valid interval.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval validates the invariant Start < End.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// IsValid reports whether the interval satisfies Start < End.
func (i TimeInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether two half-open intervals intersect.
// A booking that ends exactly when another starts does NOT overlap:
//
//	[10:00, 11:00) и [11:00, 12:00) → false
//	[10:00, 11:30) и [11:00, 12:00) → true
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// DurationHours returns the interval length in whole hours, rounded up.
// A 2.5 hour interval is billed as 3 hours.
func (i TimeInterval) DurationHours() int {
	return int(math.Ceil(i.End.Sub(i.Start).Hours()))
}

// IsOverlapping проверяет, конфликтует ли интервал-кандидат хотя бы с одним
// из существующих бронирований. Учитываются только бронирования, занимающие
// слот (pending/confirmed). Некорректные записи (start >= end) пропускаются,
// а не роняют проверку: они отбрасываются отдельным шагом валидации при
// загрузке из Booking Store.
//
// Возвращает ErrInvalidInterval, если сам кандидат некорректен — проверяется
// до любых сравнений.
func IsOverlapping(candidate TimeInterval, existing []Booking) (bool, error) {
	if !candidate.IsValid() {
		return false, ErrInvalidInterval
	}

	for _, b := range existing {
		if !b.Blocks() {
			continue
		}
		if !b.Interval.IsValid() {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return true, nil
		}
	}

	return false, nil
}

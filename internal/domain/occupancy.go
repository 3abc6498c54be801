package domain

import (
	"fmt"
	"time"
)

// CalendarDate календарная дата в таймзоне отображения площадки.
// Сравнение по значению (равенство дат, а не моментов времени).
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of the instant in the given location.
// The location matters: a booking at 00:30 IST falls on the previous day
// in UTC, which is exactly the off-by-one the calendar must not show.
func DateOf(t time.Time, loc *time.Location) CalendarDate {
	y, m, d := t.In(loc).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// String returns the date in YYYY-MM-DD form.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// OccupiedDates строит множество занятых дат для подсветки календаря.
// Дата берётся от начала интервала бронирования в таймзоне отображения
// площадки. Учитываются только бронирования, занимающие слот
// (pending/confirmed); отменённые и завершённые не попадают в результат.
//
// Функция чистая и каждый раз пересчитывает множество с нуля по полному
// списку — инкрементальные правки привели бы к устаревшим записям после
// отмены бронирования.
func OccupiedDates(bookings []Booking, loc *time.Location) map[CalendarDate]struct{} {
	occupied := make(map[CalendarDate]struct{})

	for _, b := range bookings {
		if !b.Blocks() {
			continue
		}
		if !b.Interval.IsValid() {
			continue
		}
		occupied[DateOf(b.Interval.Start, loc)] = struct{}{}
	}

	return occupied
}

package get_availability

import (
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// Request модель запроса занятости календаря зала
type Request struct {
	HallID int64 // ID зала

	// Опциональный интервал-кандидат: если задан, в ответе будет флаг
	// его доступности (консультативная проверка для виджета)
	CandidateStart *time.Time
	CandidateEnd   *time.Time
}

// Response модель ответа с занятостью календаря
type Response struct {
	HallID int64 // ID зала

	// Занятые даты (дата начала каждого pending/confirmed бронирования
	// в таймзоне отображения площадки), отсортированы по возрастанию
	OccupiedDates []domain.CalendarDate

	// Доступность интервала-кандидата; nil, если кандидат не запрашивался
	CandidateAvailable *bool

	// Момент получения данных из Booking Store
	FetchedAt time.Time
}

package snapshot

import (
	"sync"
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// Store потокобезопасный in-memory снапшот бронирований по залам.
//
// Снапшот — единственное "состояние" движка: источник истины остаётся в
// Booking Store, а здесь хранится последняя полученная выборка, по которой
// выполняются консультативные проверки пересечений и строится календарь.
// Снапшот всегда заменяется целиком (Replace) после очередного запроса к
// Booking Store и никогда не правится точечно — так исключаются устаревшие
// записи после отмены бронирования и torn reads между проверками.
type Store struct {
	mu    sync.RWMutex
	halls map[int64]entry
}

type entry struct {
	bookings  []domain.Booking
	fetchedAt time.Time
}

// NewStore создает пустой снапшот
func NewStore() *Store {
	return &Store{
		halls: make(map[int64]entry),
	}
}

// Replace заменяет снапшот бронирований зала целиком
func (s *Store) Replace(hallID int64, bookings []domain.Booking, fetchedAt time.Time) {
	copied := make([]domain.Booking, len(bookings))
	copy(copied, bookings)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.halls[hallID] = entry{bookings: copied, fetchedAt: fetchedAt}
}

// Get возвращает копию снапшота бронирований зала и время его получения.
// Возвращает ok=false, если снапшота для зала ещё нет.
func (s *Store) Get(hallID int64) (bookings []domain.Booking, fetchedAt time.Time, ok bool) {
	s.mu.RLock()
	e, found := s.halls[hallID]
	s.mu.RUnlock()

	if !found {
		return nil, time.Time{}, false
	}

	copied := make([]domain.Booking, len(e.bookings))
	copy(copied, e.bookings)
	return copied, e.fetchedAt, true
}

// Invalidate удаляет снапшот зала (например, после ухода виджета со страницы)
func (s *Store) Invalidate(hallID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.halls, hallID)
}

package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
	storeClient "github.com/venuebook/booking-engine/internal/integrations/bookingstore"
)

// UseCase use case получения занятости календаря зала.
// Каждый вызов перечитывает бронирования из Booking Store и пересчитывает
// множество занятых дат с нуля — занятость никогда не патчится инкрементально.
type UseCase struct {
	storeClient  BookingStoreClient
	snapshots    SnapshotStore
	displayLoc   *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// displayLoc — таймзона отображения площадки: дата занятости берётся в ней,
// иначе бронирования около полуночи подсвечивают соседний день.
func NewUseCase(
	storeClient BookingStoreClient,
	snapshots SnapshotStore,
	displayLoc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeClient:  storeClient,
		snapshots:    snapshots,
		displayLoc:   displayLoc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: hall=%d", req.HallID)

	if req.HallID <= 0 {
		return nil, fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	// Валидируем кандидата до обращения к Booking Store
	var candidate *domain.TimeInterval
	if req.CandidateStart != nil || req.CandidateEnd != nil {
		if req.CandidateStart == nil || req.CandidateEnd == nil {
			return nil, fmt.Errorf("%w: candidate interval requires both start and end", ErrInvalidInput)
		}
		interval, err := domain.NewTimeInterval(*req.CandidateStart, *req.CandidateEnd)
		if err != nil {
			uc.logger.Warn("GetAvailability: invalid candidate interval for hall=%d", req.HallID)
			return nil, ErrInvalidInterval
		}
		candidate = &interval
	}

	bookings, err := uc.storeClient.GetHallBookings(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, storeClient.ErrHallNotFound) {
			uc.logger.Warn("GetAvailability: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("GetAvailability: failed to fetch bookings for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrNetwork, err)
	}

	fetchedAt := uc.timeProvider.Now()
	uc.snapshots.Replace(req.HallID, bookings, fetchedAt)

	occupied := domain.OccupiedDates(bookings, uc.displayLoc)
	dates := make([]domain.CalendarDate, 0, len(occupied))
	for d := range occupied {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		if dates[i].Year != dates[j].Year {
			return dates[i].Year < dates[j].Year
		}
		if dates[i].Month != dates[j].Month {
			return dates[i].Month < dates[j].Month
		}
		return dates[i].Day < dates[j].Day
	})

	resp := &Response{
		HallID:        req.HallID,
		OccupiedDates: dates,
		FetchedAt:     fetchedAt,
	}

	if candidate != nil {
		conflict, err := domain.IsOverlapping(*candidate, bookings)
		if err != nil {
			// Кандидат провалидирован выше, сюда попасть не должны
			return nil, fmt.Errorf("%w: overlap check: %v", ErrInvalidInput, err)
		}
		available := !conflict
		resp.CandidateAvailable = &available
	}

	uc.logger.Info("GetAvailability: hall=%d, bookings=%d, occupied_dates=%d",
		req.HallID, len(bookings), len(dates))

	return resp, nil
}

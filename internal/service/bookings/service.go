package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	storeClient "github.com/venuebook/booking-engine/internal/integrations/bookingstore"
	"github.com/venuebook/booking-engine/internal/service/bookings/models"
)

// Service сервис чтения бронирований зала.
// Тонкий слой над клиентом Booking Store: типизированный маппинг DTO и
// обновление снапшота для консультативных проверок.
type Service struct {
	storeClient BookingStoreClient
	snapshots   SnapshotStore
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(storeClient BookingStoreClient, snapshots SnapshotStore, logger Logger) *Service {
	return &Service{
		storeClient: storeClient,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// GetHallBookings получает список бронирований зала для страницы календаря
func (s *Service) GetHallBookings(ctx context.Context, hallID int64) (*models.BookingListView, error) {
	s.logger.Info("GetHallBookings: fetching bookings for hall=%d", hallID)

	if hallID <= 0 {
		return nil, fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	list, err := s.storeClient.GetHallBookings(ctx, hallID)
	if err != nil {
		if errors.Is(err, storeClient.ErrHallNotFound) {
			s.logger.Warn("GetHallBookings: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetHallBookings: failed to fetch bookings for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrNetwork, err)
	}

	s.snapshots.Replace(hallID, list, time.Now())

	s.logger.Info("GetHallBookings: fetched %d bookings for hall=%d", len(list), hallID)
	return models.FromDomainBookingList(hallID, list), nil
}

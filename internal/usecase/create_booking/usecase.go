package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/venuebook/booking-engine/internal/domain"
	storeClient "github.com/venuebook/booking-engine/internal/integrations/bookingstore"
	hallClient "github.com/venuebook/booking-engine/internal/integrations/hallservice"
)

const msgSlotUnavailable = "Time slot not available"

// UseCase use case создания бронирования.
//
// Клиентская проверка доступности слота консультативная: авторитетная
// проверка выполняется Booking Store при создании. Отказ сервера по конфликту
// (проигрыш гонки двух пользователей) показывается пользователю так же, как
// результат локальной проверки.
type UseCase struct {
	storeClient  BookingStoreClient
	hallClient   HallServiceClient
	snapshots    SnapshotStore
	pricing      PricingPolicy
	timeProvider TimeProvider
	logger       Logger

	// Guard повторной отправки: пока отправка пользователя в полёте,
	// вторая игнорируется — защита от дублей бронирования.
	mu       sync.Mutex
	inflight map[int64]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	storeClient BookingStoreClient,
	hallClient HallServiceClient,
	snapshots SnapshotStore,
	pricing PricingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		storeClient:  storeClient,
		hallClient:   hallClient,
		snapshots:    snapshots,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		inflight:     make(map[int64]struct{}),
	}
}

// Execute выполняет use case создания бронирования.
//
// Порядок проверок (short-circuit на первой ошибке, детерминирован):
//  1. интервал корректен (start < end)
//  2. начало не в прошлом
//  3. 1 <= guests <= вместимость зала
//  4. нет пересечения с существующими бронированиями
//
// Затем рассчитывается цена и бронирование отправляется в Booking Store.
// После отказа по конфликту снапшот бронирований перечитывается, чтобы UI
// отражал актуальное состояние.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, hall=%d, start=%s, end=%s, guests=%d",
		req.UserID, req.HallID, req.Start, req.End, req.GuestCount)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 1. Интервал
	interval, err := validateInterval(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 2. Не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotInPast(interval, now); err != nil {
		uc.logger.Warn("CreateBooking: start in the past: user=%d, hall=%d", req.UserID, req.HallID)
		return nil, err
	}

	// Получаем зал (вместимость и часовая ставка)
	hall, err := uc.hallClient.GetHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrNetwork, err)
	}

	// 3. Вместимость
	if err := validateCapacity(req.GuestCount, hall.Capacity); err != nil {
		uc.logger.Warn("CreateBooking: capacity check failed: user=%d, hall=%d, guests=%d, capacity=%d",
			req.UserID, req.HallID, req.GuestCount, hall.Capacity)
		return nil, err
	}

	// Guard повторной отправки: одна отправка на пользователя
	if !uc.acquire(req.UserID) {
		uc.logger.Warn("CreateBooking: submission already in flight for user=%d", req.UserID)
		return nil, ErrSubmissionInFlight
	}
	defer uc.release(req.UserID)

	// Перечитываем бронирования зала перед проверкой пересечений —
	// снапшот заменяется целиком, а не правится точечно
	bookings, err := uc.refreshSnapshot(ctx, req.HallID)
	if err != nil {
		return nil, err
	}

	// 4. Пересечения
	conflict, err := domain.IsOverlapping(interval, bookings)
	if err != nil {
		// Кандидат уже проверен на шаге 1, сюда попасть не должны
		uc.logger.Error("CreateBooking: overlap check failed: %v", err)
		return nil, fmt.Errorf("%w: overlap check: %v", ErrInternal, err)
	}
	if conflict {
		uc.logger.Warn("CreateBooking: slot conflict detected locally: user=%d, hall=%d", req.UserID, req.HallID)
		return nil, &SlotUnavailableError{Detail: msgSlotUnavailable}
	}

	// Расчёт цены
	pricing, err := domain.ComputePrice(domain.PricingInput{
		HourlyRate:         hall.HourlyRatePaise(),
		DurationHours:      interval.DurationHours(),
		TaxRateBasisPoints: uc.pricing.TaxRateBasisPoints,
		ServiceFee:         uc.pricing.ServiceFee,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: pricing failed for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	validated := ValidatedBooking{
		Request: domain.BookingRequest{
			HallID:     req.HallID,
			Interval:   interval,
			GuestCount: req.GuestCount,
			Note:       req.Note,
		},
		Pricing:  pricing,
		HallName: hall.Name,
	}

	// Отправляем в Booking Store (авторитетная проверка на его стороне)
	created, err := uc.storeClient.CreateBooking(ctx, req.UserID,
		storeClient.NewCreateBookingRequest(&validated.Request, validated.Pricing.Total))
	if err != nil {
		return nil, uc.mapSubmitError(ctx, req, err)
	}

	uc.logger.Info("CreateBooking: booking created: id=%d, ref=%s, user=%d, hall=%d, total=%s",
		created.BookingID, created.BookingRef, req.UserID, req.HallID, validated.Pricing.Total)

	// Обновляем снапшот, чтобы календарь сразу показал новую бронь.
	// Неуспех обновления не отменяет созданное бронирование.
	if _, err := uc.refreshSnapshot(ctx, req.HallID); err != nil {
		uc.logger.Warn("CreateBooking: post-create snapshot refresh failed for hall=%d: %v", req.HallID, err)
	}

	return &Response{
		BookingID:  created.BookingID,
		BookingRef: created.BookingRef,
		HallID:     req.HallID,
		HallName:   hall.Name,
		Start:      interval.Start,
		End:        interval.End,
		Hours:      interval.DurationHours(),
		GuestCount: req.GuestCount,
		Status:     string(domain.StatusPending),
		Pricing:    pricing,
	}, nil
}

// refreshSnapshot перечитывает бронирования зала из Booking Store и заменяет
// снапшот целиком
func (uc *UseCase) refreshSnapshot(ctx context.Context, hallID int64) ([]domain.Booking, error) {
	bookings, err := uc.storeClient.GetHallBookings(ctx, hallID)
	if err != nil {
		if errors.Is(err, storeClient.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found in booking store", hallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to fetch bookings for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrNetwork, err)
	}

	uc.snapshots.Replace(hallID, bookings, uc.timeProvider.Now())
	return bookings, nil
}

// mapSubmitError конвертирует ошибку отправки в ошибку usecase.
// При конфликте слота снапшот перечитывается: пользователь будет повторять
// попытку уже по актуальным данным.
func (uc *UseCase) mapSubmitError(ctx context.Context, req *Request, err error) error {
	var slotTaken *storeClient.SlotTakenError
	if errors.As(err, &slotTaken) {
		uc.logger.Warn("CreateBooking: store rejected booking on conflict: user=%d, hall=%d: %s",
			req.UserID, req.HallID, slotTaken.Detail)

		if _, refreshErr := uc.refreshSnapshot(ctx, req.HallID); refreshErr != nil {
			uc.logger.Warn("CreateBooking: snapshot refresh after conflict failed for hall=%d: %v",
				req.HallID, refreshErr)
		}

		return &SlotUnavailableError{Detail: slotTaken.Detail}
	}

	if errors.Is(err, storeClient.ErrHallNotFound) {
		uc.logger.Warn("CreateBooking: hall id=%d not found during submit", req.HallID)
		return ErrHallNotFound
	}

	uc.logger.Error("CreateBooking: submit failed: user=%d, hall=%d: %v", req.UserID, req.HallID, err)
	return fmt.Errorf("%w: submit failed: %v", ErrNetwork, err)
}

// acquire помечает отправку пользователя как находящуюся в полёте
func (uc *UseCase) acquire(userID int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inflight[userID]; busy {
		return false
	}
	uc.inflight[userID] = struct{}{}
	return true
}

// release снимает отметку о полёте отправки
func (uc *UseCase) release(userID int64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, userID)
}

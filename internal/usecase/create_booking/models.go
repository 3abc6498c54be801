package create_booking

import (
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
	"github.com/venuebook/booking-engine/pkg/money"
)

// Request модель запроса на бронирование зала
type Request struct {
	UserID     int64     // ID пользователя (из сессии)
	HallID     int64     // ID зала
	Start      time.Time // Начало бронирования
	End        time.Time // Конец бронирования
	GuestCount int       // Количество гостей
	Note       *string   // Заметка к бронированию (опционально)
}

// PricingPolicy параметры расчёта цены (из конфигурации)
type PricingPolicy struct {
	TaxRateBasisPoints int64       // Ставка налога в базисных пунктах (18% = 1800)
	ServiceFee         money.Paise // Фиксированный сервисный сбор
}

// ValidatedBooking запрос, прошедший все проверки, с рассчитанной ценой.
// Готов к отправке в Booking Store.
type ValidatedBooking struct {
	Request  domain.BookingRequest
	Pricing  domain.PricingResult
	HallName string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  int64     // ID бронирования в Booking Store
	BookingRef string    // Человекочитаемый номер брони (BK-XXXXXXXX)
	HallID     int64     // ID зала
	HallName   string    // Название зала
	Start      time.Time // Начало бронирования
	End        time.Time // Конец бронирования
	Hours      int       // Оплачиваемая длительность в часах
	GuestCount int       // Количество гостей
	Status     string    // Статус бронирования (pending до подтверждения)

	// Раскладка цены, по которой выставлен счёт
	Pricing domain.PricingResult
}

package quote_booking

import (
	"github.com/venuebook/booking-engine/internal/domain"
	"github.com/venuebook/booking-engine/pkg/money"
)

// Request модель запроса расчёта стоимости бронирования.
// Виджет пересчитывает цену при каждом движении ползунка длительности.
type Request struct {
	HallID        int64 // ID зала
	DurationHours int   // Длительность в часах
}

// PricingPolicy параметры расчёта цены (из конфигурации)
type PricingPolicy struct {
	TaxRateBasisPoints int64       // Ставка налога в базисных пунктах
	ServiceFee         money.Paise // Фиксированный сервисный сбор
}

// Response модель ответа с раскладкой цены
type Response struct {
	HallID        int64       // ID зала
	HallName      string      // Название зала
	HourlyRate    money.Paise // Часовая ставка зала
	DurationHours int         // Длительность в часах

	Pricing domain.PricingResult // base / tax / serviceFee / total, в пайсах
}

package hallservice

import "github.com/venuebook/booking-engine/pkg/money"

// Hall модель зала из каталога площадок
type Hall struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Location     *string `json:"location,omitempty"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"` // в рупиях, как отдаёт каталог
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}

// HourlyRatePaise возвращает часовую ставку в пайсах.
// Каталог отдаёт цену числом в рупиях; внутри движка все суммы целочисленные.
func (h *Hall) HourlyRatePaise() money.Paise {
	return money.Paise(int64(h.PricePerHour*100 + 0.5))
}

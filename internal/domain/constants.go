package domain

// Default pricing values (mirrors the Booking Store defaults)
const (
	// DefaultTaxRateBasisPoints ставка GST 18% в базисных пунктах
	DefaultTaxRateBasisPoints = 1800

	// DefaultServiceFeePaise фиксированный сервисный сбор ₹300
	DefaultServiceFeePaise = 300 * 100
)

// Business validation constants
const (
	MinGuestCount    = 1
	MinDurationHours = 1
	MaxDurationHours = 24
	MaxNoteLength    = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// DefaultDisplayTimezone таймзона отображения календаря по умолчанию
const DefaultDisplayTimezone = "Asia/Kolkata"

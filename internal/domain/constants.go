package domain

// Default form validation values
const (
	DefaultMinAge           = 18
	DefaultMaxAge           = 120
	DefaultMaxTotalBookings = 30
)

// Default slot catalog values
const (
	DefaultStartHour  = 9
	DefaultEndHour    = 17
	DefaultWindowDays = 14 // длина окна по умолчанию при пустой конфигурации
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

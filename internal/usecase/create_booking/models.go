package create_booking

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// Request модель заявки на бронирование.
// Age передается сырой строкой: форма исторически присылает и числа,
// и строки, валидация парсит значение сама.
type Request struct {
	Date                string
	TimeSlot            string
	Name                string
	Email               string
	Gender              string
	Age                 string
	Education           string
	NativePolishSpeaker bool
}

// Rules правила валидации анкеты, задаются конфигурацией
type Rules struct {
	MinAge               int
	MaxAge               int
	RequireEducation     bool
	RequireNativeSpeaker bool
	MaxTotalBookings     int // 0 = без ограничения
}

// DefaultRules правила по умолчанию
func DefaultRules() Rules {
	return Rules{
		MinAge:           domain.DefaultMinAge,
		MaxAge:           domain.DefaultMaxAge,
		MaxTotalBookings: domain.DefaultMaxTotalBookings,
	}
}

// Response результат принятого бронирования
type Response struct {
	Booking *domain.BookingRecord
	// Replaced прежняя запись того же email, вытесненная новой (nil, если её не было)
	Replaced *domain.BookingRecord
}

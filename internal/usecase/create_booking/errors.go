package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля анкеты
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidDate возвращается при синтаксически некорректной дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateNotConfigured возвращается, когда дата не входит в каталог слотов
	ErrDateNotConfigured = errors.New("create_booking: date is not available for booking")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в список слотов даты
	ErrInvalidTimeSlot = errors.New("create_booking: time slot is not available on this date")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email address")

	// ErrInvalidAge возвращается, когда возраст не парсится или вне допустимых границ
	ErrInvalidAge = errors.New("create_booking: invalid age")

	// ErrInvalidEducation возвращается, когда education вне допустимого набора
	ErrInvalidEducation = errors.New("create_booking: invalid education value")

	// ErrNativeSpeakerRequired возвращается, когда не подтверждено знание языка
	ErrNativeSpeakerRequired = errors.New("create_booking: native speaker attestation is required")

	// ErrSlotTaken возвращается, когда слот уже занят другим участником
	ErrSlotTaken = errors.New("create_booking: slot is already booked")

	// ErrBookingLimitReached возвращается при достижении лимита бронирований
	ErrBookingLimitReached = errors.New("create_booking: total booking limit reached")

	// ErrInternal возвращается при ошибках хранилища и прочих внутренних сбоях
	ErrInternal = errors.New("create_booking: internal error")
)

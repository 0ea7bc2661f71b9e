package get_available_slots

import "errors"

var (
	// ErrDateNotConfigured возвращается, когда явно запрошенная дата
	// синтаксически корректна, но не входит в каталог слотов
	ErrDateNotConfigured = errors.New("get_available_slots: date is not available for booking")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("get_available_slots: internal error")
)

package booking

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения коллекции бронирований
	ErrLoad = errors.New("booking.store: failed to load bookings")

	// ErrSave возвращается при ошибке сохранения коллекции бронирований
	ErrSave = errors.New("booking.store: failed to save bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.store: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.store: failed to scan row")
)

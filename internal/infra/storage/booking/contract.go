package booking

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Store абстрактное хранилище бронирований.
// Семантика whole-collection: LoadAll возвращает все записи, SaveAll
// целиком заменяет коллекцию. Backend'ы на key-value основе могут
// реализовывать SaveAll инкрементально, контракт от этого не меняется.
type Store interface {
	LoadAll(ctx context.Context) ([]*domain.BookingRecord, error)
	SaveAll(ctx context.Context, records []*domain.BookingRecord) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

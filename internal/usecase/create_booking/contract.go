package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Store интерфейс хранилища бронирований
type Store interface {
	LoadAll(ctx context.Context) ([]*domain.BookingRecord, error)
	SaveAll(ctx context.Context, records []*domain.BookingRecord) error
}

// Notifier интерфейс фоновой отправки уведомлений.
// Вызов не блокирует и не влияет на результат бронирования.
type Notifier interface {
	Enqueue(record, replaced *domain.BookingRecord)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

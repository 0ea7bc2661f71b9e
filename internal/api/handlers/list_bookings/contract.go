package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type BookingsService interface {
	ListActive(ctx context.Context) ([]*domain.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bookings

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service сервис чтения активных бронирований: список для оператора
// и выгрузка календаря
type Service struct {
	store  Store
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListActive возвращает все активные бронирования, упорядоченные по
// дате и слоту
func (s *Service) ListActive(ctx context.Context) ([]*domain.BookingRecord, error) {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.Error("ListActive: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].TimeSlot < records[j].TimeSlot
	})

	s.logger.Info("ListActive: %d active bookings", len(records))
	return records, nil
}

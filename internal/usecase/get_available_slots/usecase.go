package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	store   Store
	catalog *domain.CatalogHolder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store Store, catalog *domain.CatalogHolder, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute возвращает доступные и занятые слоты выбранной даты.
// Пустая или синтаксически некорректная дата заменяется минимальной датой
// каталога; корректная, но ненастроенная дата отклоняется — так же, как
// её отклонило бы создание бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	catalog := uc.catalog.Get()
	minDate, maxDate := catalog.Bounds()

	date := req.Date
	if date == "" {
		date = minDate
	} else if _, err := time.Parse(domain.DateFormat, date); err != nil {
		uc.logger.Warn("GetAvailableSlots: malformed date %q, falling back to %s", req.Date, minDate)
		date = minDate
	} else if !catalog.IsConfiguredDate(date) {
		uc.logger.Warn("GetAvailableSlots: date %s is not configured", date)
		return nil, fmt.Errorf("%w: %s", ErrDateNotConfigured, date)
	}

	records, err := uc.store.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	allSlots := catalog.SlotsFor(date)
	booked := bookedSlotsFor(allSlots, records, date)
	available := subtractSlots(allSlots, booked)

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d, booked=%d",
		date, len(available), len(booked))

	return &Response{
		Date:            date,
		MinDate:         minDate,
		MaxDate:         maxDate,
		ConfiguredDates: catalog.DaysConfigured(),
		AllSlots:        allSlots,
		AvailableSlots:  available,
		BookedSlots:     booked,
	}, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

// UseCase use case создания бронирования: валидация анкеты, разрешение
// конфликтов и замена прежней записи того же email
type UseCase struct {
	store        Store
	catalog      *domain.CatalogHolder
	notifier     Notifier
	rules        Rules
	timeProvider TimeProvider
	logger       Logger
	metrics      *metrics.Metrics // может быть nil, если метрики выключены

	// Сериализует цикл load-all / evaluate / save-all внутри процесса.
	// Межпроцессная гонка на файловом backend'е остается осознанным
	// ограничением (см. DESIGN.md).
	mu sync.Mutex
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store Store,
	catalog *domain.CatalogHolder,
	notifier Notifier,
	rules Rules,
	logger Logger,
	m *metrics.Metrics,
) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		notifier:     notifier,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      m,
	}
}

// Execute выполняет бронирование.
// Все ошибки валидации и конфликтов возвращаются sentinel-ошибками этого
// пакета и никогда не паникуют: это ожидаемые пользовательские исходы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s, email=%s",
		req.Date, req.TimeSlot, domain.NormalizeEmail(req.Email))

	// 1. Валидация полей (порядок фиксирован, первая ошибка выигрывает)
	if err := validateRequest(req, uc.rules, uc.catalog.Get()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.countRejection(err)
		return nil, err
	}

	// 2. Цикл load / evaluate / save сериализован внутри процесса
	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.store.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	// 3. Разрешение конфликтов: своя прежняя запись вытесняется и не
	// участвует в проверках занятости
	normalized := domain.NormalizeEmail(req.Email)
	replaced, others := partitionByEmail(records, normalized)

	for _, rec := range others {
		if rec.OccupiesSlot(req.Date, req.TimeSlot) {
			uc.logger.Warn("CreateBooking: slot %s %s already booked", req.Date, req.TimeSlot)
			uc.countRejection(ErrSlotTaken)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, req.Date, req.TimeSlot)
		}
	}

	// Лимит считается после исключения вытесняемой записи: замена не
	// увеличивает количество активных бронирований
	if uc.rules.MaxTotalBookings > 0 && len(others)+1 > uc.rules.MaxTotalBookings {
		uc.logger.Warn("CreateBooking: booking limit %d reached", uc.rules.MaxTotalBookings)
		uc.countRejection(ErrBookingLimitReached)
		return nil, fmt.Errorf("%w: limit %d", ErrBookingLimitReached, uc.rules.MaxTotalBookings)
	}

	// 4. Новая запись: id монотонно растет вместе с временем создания
	now := uc.timeProvider.Now()
	age, err := parseAge(req.Age, uc.rules.MinAge, uc.rules.MaxAge)
	if err != nil {
		// недостижимо после validateRequest
		return nil, err
	}

	record := &domain.BookingRecord{
		ID:                  strconv.FormatInt(now.UnixMilli(), 10),
		Date:                req.Date,
		TimeSlot:            req.TimeSlot,
		Name:                strings.TrimSpace(req.Name),
		Email:               normalized,
		Gender:              strings.TrimSpace(req.Gender),
		Age:                 age,
		Education:           strings.TrimSpace(req.Education),
		NativePolishSpeaker: req.NativePolishSpeaker,
		Timestamp:           now.UTC().Format(time.RFC3339),
	}

	updated := append(others, record)
	if err := uc.store.SaveAll(ctx, updated); err != nil {
		uc.logger.Error("CreateBooking: failed to save bookings: %v", err)
		return nil, fmt.Errorf("%w: save bookings: %v", ErrInternal, err)
	}

	if replaced != nil {
		uc.logger.Info("CreateBooking: booking id=%s replaced prior booking id=%s (%s %s)",
			record.ID, replaced.ID, replaced.Date, replaced.TimeSlot)
	} else {
		uc.logger.Info("CreateBooking: booking id=%s created for %s %s", record.ID, record.Date, record.TimeSlot)
	}

	if uc.metrics != nil {
		uc.metrics.BookingsCreated.Inc()
		if replaced != nil {
			uc.metrics.BookingsReplaced.Inc()
		}
	}

	// 5. Уведомление строго fire-and-forget: бронирование уже сохранено,
	// судьба письма на ответ клиенту не влияет
	if uc.notifier != nil {
		uc.notifier.Enqueue(record, replaced)
	}

	return &Response{Booking: record, Replaced: replaced}, nil
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

func (uc *UseCase) countRejection(err error) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.BookingsRejected.WithLabelValues(rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrDateNotConfigured):
		return "date_not_configured"
	case errors.Is(err, ErrInvalidTimeSlot):
		return "invalid_time_slot"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrInvalidAge):
		return "invalid_age"
	case errors.Is(err, ErrInvalidEducation):
		return "invalid_education"
	case errors.Is(err, ErrNativeSpeakerRequired):
		return "native_speaker_required"
	case errors.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errors.Is(err, ErrBookingLimitReached):
		return "limit_reached"
	default:
		return "other"
	}
}

package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ics"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

const sendTimeout = 30 * time.Second

// Logger reports dispatcher activity.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type task struct {
	record   *domain.BookingRecord
	replaced *domain.BookingRecord
}

// Dispatcher delivers booking confirmations from a background worker.
// Enqueue never blocks the caller: a full queue drops the task with a log
// entry. Delivery failures are logged and counted, never propagated — the
// booking has already been persisted and answered by the time a task runs.
type Dispatcher struct {
	sender  EmailSender
	subject string
	tasks   chan task
	logger  Logger
	metrics *metrics.Metrics // may be nil

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher creates a dispatcher and starts its worker goroutine.
func NewDispatcher(sender EmailSender, subject string, queueSize int, logger Logger, m *metrics.Metrics) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		sender:  sender,
		subject: subject,
		tasks:   make(chan task, queueSize),
		logger:  logger,
		metrics: m,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue schedules a confirmation for background delivery.
func (d *Dispatcher) Enqueue(record, replaced *domain.BookingRecord) {
	select {
	case d.tasks <- task{record: record, replaced: replaced}:
	default:
		d.logger.Warn("notify: queue full, dropping confirmation for booking %s", record.ID)
		d.countFailure()
	}
}

// Close stops accepting tasks and waits for in-flight deliveries.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.tasks)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for t := range d.tasks {
		d.deliver(t)
	}
}

func (d *Dispatcher) deliver(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	msg, err := buildConfirmation(t.record, t.replaced, d.subject)
	if err != nil {
		d.logger.Error("notify: failed to build confirmation for booking %s: %v", t.record.ID, err)
		d.countFailure()
		return
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.Error("notify: failed to deliver confirmation for booking %s: %v", t.record.ID, err)
		d.countFailure()
		return
	}

	d.logger.Info("notify: confirmation for booking %s delivered to %s", t.record.ID, t.record.Email)
}

func (d *Dispatcher) countFailure() {
	if d.metrics != nil {
		d.metrics.NotificationsFailed.Inc()
	}
}

// buildConfirmation renders the confirmation email with an ICS attachment.
func buildConfirmation(record, replaced *domain.BookingRecord, subject string) (EmailMessage, error) {
	event, err := calendar.EventFromRecord(record)
	if err != nil {
		return EmailMessage{}, err
	}
	document, err := ics.Build([]ics.Event{event})
	if err != nil {
		return EmailMessage{}, err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment is confirmed for %s at %s.\n",
		record.Name, record.Date, record.TimeSlot)
	if replaced != nil {
		body += fmt.Sprintf(
			"\nYour previous appointment on %s at %s has been cancelled.\n",
			replaced.Date, replaced.TimeSlot)
	}
	body += "\nA calendar invitation is attached.\n"

	return EmailMessage{
		To:      record.Email,
		ToName:  record.Name,
		Subject: subject,
		Body:    body,
		ICS:     document,
	}, nil
}

// Discard is a no-op notifier used when email delivery is disabled.
type Discard struct{}

// Enqueue ignores the notification.
func (Discard) Enqueue(_, _ *domain.BookingRecord) {}

package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []EmailMessage
	err      error
}

func (s *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *recordingSender) sent() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EmailMessage(nil), s.messages...)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:       "1757200000000",
		Date:     "2026-09-07",
		TimeSlot: "10:00",
		Name:     "Jan Kowalski",
		Email:    "jan@example.com",
	}
}

func TestDispatcher_DeliversConfirmationWithAttachment(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, "Appointment confirmation", 8, nopLogger{}, nil)

	d.Enqueue(testBooking(), nil)
	d.Close()

	messages := sender.sent()
	require.Len(t, messages, 1)
	msg := messages[0]
	assert.Equal(t, "jan@example.com", msg.To)
	assert.Equal(t, "Appointment confirmation", msg.Subject)
	assert.Contains(t, msg.Body, "2026-09-07 at 10:00")
	assert.Contains(t, msg.ICS, "BEGIN:VEVENT")
}

func TestDispatcher_MentionsReplacedBooking(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, "Appointment confirmation", 8, nopLogger{}, nil)

	replaced := testBooking()
	replaced.Date = "2026-09-05"
	replaced.TimeSlot = "09:00"
	d.Enqueue(testBooking(), replaced)
	d.Close()

	messages := sender.sent()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Body, "2026-09-05 at 09:00 has been cancelled")
}

func TestDispatcher_DeliveryFailureDoesNotPropagate(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, "subject", 8, nopLogger{}, nil)

	// Enqueue не возвращает ошибок и не паникует при падении отправки
	d.Enqueue(testBooking(), nil)
	d.Close()
	assert.Empty(t, sender.sent())
}

func TestDispatcher_BadRecordIsLoggedAndSkipped(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, "subject", 8, nopLogger{}, nil)

	bad := testBooking()
	bad.TimeSlot = "99:99"
	d.Enqueue(bad, nil)
	d.Close()
	assert.Empty(t, sender.sent())
}

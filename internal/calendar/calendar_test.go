package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func TestEventFromRecord(t *testing.T) {
	event, err := EventFromRecord(&domain.BookingRecord{
		ID:       "1757200000000",
		Date:     "2026-09-07",
		TimeSlot: "10:00",
		Name:     "Jan Kowalski",
		Email:    "jan@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "1757200000000@appointments", event.UID)
	assert.Equal(t, "Appointment: Jan Kowalski", event.Summary)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Hour, event.End.Sub(event.Start))
}

func TestEventFromRecord_MalformedSlot(t *testing.T) {
	_, err := EventFromRecord(&domain.BookingRecord{
		ID:       "1",
		Date:     "2026-09-07",
		TimeSlot: "25:99",
	})
	assert.Error(t, err)
}

func TestEventsFromRecords_FailsOnFirstBadRecord(t *testing.T) {
	records := []*domain.BookingRecord{
		{ID: "1", Date: "2026-09-07", TimeSlot: "10:00", Name: "Jan"},
		{ID: "2", Date: "not-a-date", TimeSlot: "11:00", Name: "Anna"},
	}
	_, err := EventsFromRecords(records)
	assert.Error(t, err)
}

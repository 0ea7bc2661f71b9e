// Package calendar converts booking records into iCalendar events.
package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ics"
)

// slotDuration длительность встречи: каталог выдает часовые слоты
const slotDuration = time.Hour

// EventFromRecord строит календарное событие из бронирования
func EventFromRecord(rec *domain.BookingRecord) (ics.Event, error) {
	start, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, rec.Date+" "+rec.TimeSlot)
	if err != nil {
		return ics.Event{}, fmt.Errorf("calendar: booking %s has malformed date/slot: %w", rec.ID, err)
	}

	return ics.Event{
		UID:         rec.ID + "@appointments",
		Summary:     fmt.Sprintf("Appointment: %s", rec.Name),
		Description: fmt.Sprintf("Booked by %s (%s)", rec.Name, rec.Email),
		Start:       start,
		End:         start.Add(slotDuration),
	}, nil
}

// EventsFromRecords строит события для всех бронирований
func EventsFromRecords(records []*domain.BookingRecord) ([]ics.Event, error) {
	events := make([]ics.Event, 0, len(records))
	for _, rec := range records {
		event, err := EventFromRecord(rec)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

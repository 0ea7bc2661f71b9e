package get_available_slots

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// bookedSlotsFor возвращает занятые слоты даты в порядке каталога
func bookedSlotsFor(allSlots []string, records []*domain.BookingRecord, date string) []string {
	taken := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Date == date {
			taken[rec.TimeSlot] = true
		}
	}

	booked := make([]string, 0, len(taken))
	for _, slot := range allSlots {
		if taken[slot] {
			booked = append(booked, slot)
		}
	}
	return booked
}

// subtractSlots возвращает слоты из all, не входящие в booked, сохраняя порядок
func subtractSlots(all, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	free := make([]string, 0, len(all))
	for _, slot := range all {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free
}

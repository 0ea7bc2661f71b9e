package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	MinDate         string   `json:"minDate"`
	MaxDate         string   `json:"maxDate"`
	ConfiguredDates []string `json:"configuredDates"`
	AllSlots        []string `json:"allSlots"`
	AvailableSlots  []string `json:"availableSlots"`
	BookedSlots     []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:            resp.Date,
		MinDate:         resp.MinDate,
		MaxDate:         resp.MaxDate,
		ConfiguredDates: resp.ConfiguredDates,
		AllSlots:        resp.AllSlots,
		AvailableSlots:  resp.AvailableSlots,
		BookedSlots:     resp.BookedSlots,
	}
}

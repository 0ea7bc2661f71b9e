package list_bookings

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type BookingView struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	TimeSlot            string `json:"timeSlot"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Gender              string `json:"gender"`
	Age                 int    `json:"age"`
	Education           string `json:"education,omitempty"`
	NativePolishSpeaker bool   `json:"nativePolishSpeaker"`
	Timestamp           string `json:"timestamp"`
}

type ListBookingsResponse struct {
	Total    int            `json:"total"`
	Bookings []*BookingView `json:"bookings"`
}

func FromRecords(records []*domain.BookingRecord) *ListBookingsResponse {
	views := make([]*BookingView, 0, len(records))
	for _, rec := range records {
		views = append(views, &BookingView{
			ID:                  rec.ID,
			Date:                rec.Date,
			TimeSlot:            rec.TimeSlot,
			Name:                rec.Name,
			Email:               rec.Email,
			Gender:              rec.Gender,
			Age:                 rec.Age,
			Education:           string(rec.Education),
			NativePolishSpeaker: rec.NativePolishSpeaker,
			Timestamp:           rec.Timestamp,
		})
	}

	return &ListBookingsResponse{
		Total:    len(views),
		Bookings: views,
	}
}

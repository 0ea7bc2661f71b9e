package create_booking

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Age и nativePolishSpeaker принимаются как сырой JSON: форма исторически
// присылает и числа, и строки ("30", 30, "true", true, "on").
type CreateBookingRequest struct {
	Date                string          `json:"date"`
	TimeSlot            string          `json:"timeSlot"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Gender              string          `json:"gender"`
	Age                 json.RawMessage `json:"age"`
	Education           string          `json:"education"`
	NativePolishSpeaker json.RawMessage `json:"nativePolishSpeaker"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success                 bool            `json:"success"`
	Message                 string          `json:"message"`
	Booking                 BookingResponse `json:"booking"`
	ReplacedExistingBooking bool            `json:"replacedExistingBooking"`
}

// BookingResponse представление бронирования в ответе
type BookingResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:                r.Date,
		TimeSlot:            r.TimeSlot,
		Name:                r.Name,
		Email:               r.Email,
		Gender:              r.Gender,
		Age:                 coerceString(r.Age),
		Education:           r.Education,
		NativePolishSpeaker: coerceBool(r.NativePolishSpeaker),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	message := "Booking confirmed"
	if resp.Replaced != nil {
		message = "Booking confirmed, your previous booking was replaced"
	}
	return &CreateBookingResponse{
		Success:                 true,
		Message:                 message,
		Booking:                 fromDomain(resp.Booking),
		ReplacedExistingBooking: resp.Replaced != nil,
	}
}

func fromDomain(rec *domain.BookingRecord) BookingResponse {
	return BookingResponse{
		ID:        rec.ID,
		Date:      rec.Date,
		TimeSlot:  rec.TimeSlot,
		Name:      rec.Name,
		Email:     rec.Email,
		Timestamp: rec.Timestamp,
	}
}

// coerceString приводит сырое JSON значение к строке: строка без кавычек,
// число и прочие скаляры как есть
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// coerceBool приводит сырое JSON значение к bool: true, "true", "1",
// "yes", "on" считаются истиной
func coerceBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	if parsed, err := strconv.ParseBool(s); err == nil {
		return parsed
	}
	return false
}

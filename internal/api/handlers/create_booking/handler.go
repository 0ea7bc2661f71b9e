package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgMissingFields         = "missing required fields"
	msgInvalidDate           = "invalid booking date, expected YYYY-MM-DD"
	msgDateNotConfigured     = "selected date is not available for booking"
	msgInvalidTimeSlot       = "selected time slot is not available on this date"
	msgInvalidEmail          = "invalid email address"
	msgInvalidAge            = "invalid age"
	msgInvalidEducation      = "invalid education value"
	msgNativeSpeakerRequired = "native speaker attestation is required"
	msgSlotTaken             = "this time slot is already booked"
	msgLimitReached          = "no more bookings are accepted"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateNotConfigured):
			handlers.RespondBadRequest(w, msgDateNotConfigured)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidAge):
			handlers.RespondBadRequest(w, msgInvalidAge)

		case errors.Is(err, createBooking.ErrInvalidEducation):
			handlers.RespondBadRequest(w, msgInvalidEducation)

		case errors.Is(err, createBooking.ErrNativeSpeakerRequired):
			handlers.RespondBadRequest(w, msgNativeSpeakerRequired)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /book - Slot taken: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBookingLimitReached):
			h.logger.Warn("POST /book - Booking limit reached")
			handlers.RespondConflict(w, msgLimitReached)

		default:
			h.logger.Error("POST /book - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created: id=%s, date=%s, slot=%s",
		result.Booking.ID, result.Booking.Date, result.Booking.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

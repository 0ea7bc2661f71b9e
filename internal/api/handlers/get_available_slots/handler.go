package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const msgDateNotConfigured = "selected date is not available for booking"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /available-slots
// Query params: date (optional, YYYY-MM-DD; пустая или нераспознанная дата
// заменяется минимальной датой каталога)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateNotConfigured):
			h.logger.Warn("GET /available-slots - Date not configured: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotConfigured)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - date=%s, available=%d, booked=%d",
		result.Date, len(result.AvailableSlots), len(result.BookedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

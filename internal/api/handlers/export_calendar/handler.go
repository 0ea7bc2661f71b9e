package export_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/ics"
)

const msgNoBookings = "no bookings to export"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar.ics - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if len(records) == 0 {
		h.logger.Info("GET /calendar.ics - No bookings to export")
		handlers.RespondNotFound(w, msgNoBookings)
		return
	}

	events, err := calendar.EventsFromRecords(records)
	if err != nil {
		h.logger.Error("GET /calendar.ics - Failed to build events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	document, err := ics.Build(events)
	if err != nil {
		h.logger.Error("GET /calendar.ics - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar.ics - Exported %d bookings", len(records))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))
}

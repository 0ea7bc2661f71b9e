package reload_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ReloadScheduleResponse struct {
	Success         bool   `json:"success"`
	MinDate         string `json:"minDate"`
	MaxDate         string `json:"maxDate"`
	ConfiguredDates int    `json:"configuredDates"`
}

type Handler struct {
	builder CatalogBuilder
	holder  *domain.CatalogHolder
	logger  Logger
}

func NewHandler(builder CatalogBuilder, holder *domain.CatalogHolder, logger Logger) *Handler {
	return &Handler{
		builder: builder,
		holder:  holder,
		logger:  logger,
	}
}

// Handle POST /admin/reload-schedule
// Пересобирает каталог слотов из текущей конфигурации расписания и
// атомарно подменяет его для всех обработчиков.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.builder.BuildCatalog(time.Now())
	if err != nil {
		h.logger.Error("POST /admin/reload-schedule - Failed to rebuild catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.holder.Swap(catalog)

	minDate, maxDate := catalog.Bounds()
	h.logger.Info("POST /admin/reload-schedule - Catalog reloaded: minDate=%s, maxDate=%s, dates=%d",
		minDate, maxDate, len(catalog.DaysConfigured()))

	handlers.RespondJSON(w, http.StatusOK, &ReloadScheduleResponse{
		Success:         true,
		MinDate:         minDate,
		MaxDate:         maxDate,
		ConfiguredDates: len(catalog.DaysConfigured()),
	})
}

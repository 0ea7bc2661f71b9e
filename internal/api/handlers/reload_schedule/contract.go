package reload_schedule

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CatalogBuilder interface {
	BuildCatalog(now time.Time) (*domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package handler

import (
	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/handler/http"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/metrics"
	"github.com/MKhiriev/travel-journal-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler

	// Metrics is nil when no metrics address is configured.
	Metrics *metrics.Metrics
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{}
	if cfg.MetricsAddress != "" {
		handlers.Metrics = metrics.NewMetrics()
	}
	handlers.HTTP = http.NewHandler(services, handlers.Metrics, cfg.BodyLimit, logger)

	return handlers, nil
}

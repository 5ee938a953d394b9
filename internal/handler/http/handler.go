package http

import (
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/metrics"
	"github.com/MKhiriev/travel-journal-api/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// bodyLimit caps the size of JSON request bodies in bytes.
	bodyLimit int64

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil metrics disables request
// instrumentation.
func NewHandler(services *service.Services, metrics *metrics.Metrics, bodyLimit int64, logger *logger.Logger) *Handler {
	logger.Info().Int64("body_limit", bodyLimit).Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   metrics,
		bodyLimit: bodyLimit,
		logger:    logger,
	}
}

package http

import (
	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/metrics"
	"github.com/MKhiriev/go-calendar/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil metrics disables instrumentation
// and makes /metrics answer 503.
func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

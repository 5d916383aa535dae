package handler

import (
	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/handler/http"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/metrics"
	"github.com/MKhiriev/go-calendar/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, metrics, logger),
	}, nil
}

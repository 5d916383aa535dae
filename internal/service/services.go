package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
)

type Services struct {
	AuthService    AuthService
	EventService   EventService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("error loading time zone %q: %w", cfg.App.TimeZone, err)
	}

	validator := validators.NewRequestValidator()
	eventService := NewEventService(storages.EventRepository, validator, location, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		EventService:   NewEventValidationService(validator).Wrap(eventService),
		AppInfoService: appInfoService,
	}, nil
}

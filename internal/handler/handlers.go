package handler

import (
	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/handler/http"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
// Only the HTTP document API exists today.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http handler")
	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}

package handler

import (
	"costmanager/internal/config"
	"costmanager/internal/handler/http"
	"costmanager/internal/logger"
	"costmanager/internal/service"
)

// Handlers aggregates the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for every configured address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package handler

import (
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/handler/http"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/service"
)

// Handlers bundles the transport-layer handlers of the application. The
// service currently exposes a single HTTP surface.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}

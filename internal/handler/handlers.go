package handler

import (
	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/handler/http"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/service"
)

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

package http

import (
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

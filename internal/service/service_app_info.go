package service

import (
	"context"

	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/logger"
)

// appInfoService serves static build metadata. The version string is fixed
// at construction from configuration.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("creating app info service")

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

package service

import (
	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
)

type Services struct {
	AuthService       AuthService
	NameService       NameService
	ContextService    ContextService
	AssignmentService AssignmentService
	ResolverService   ResolverService
	OAuthService      OAuthService
	AuditService      AuditService
	AppInfoService    AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	resolver := NewResolverService(
		storages.UserRepository,
		storages.NameRepository,
		storages.ContextRepository,
		storages.AssignmentRepository,
		logger,
	)
	audit := NewAuditService(storages.AuditRepository, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.NameRepository, storages.ContextRepository, cfg.App, logger),
		NameService:       NewNameService(storages.NameRepository, storages.AssignmentRepository, logger),
		ContextService:    NewContextService(storages.ContextRepository, logger),
		AssignmentService: NewAssignmentService(storages.AssignmentRepository, storages.ContextRepository, storages.NameRepository, logger),
		ResolverService:   resolver,
		OAuthService:      NewOAuthService(storages.OAuthRepository, resolver, audit, cfg.App, logger),
		AuditService:      audit,
		AppInfoService:    appInfo,
	}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/models"
)

// defaultAuditLimit caps the dashboard feed when the caller does not ask
// for a specific page size.
const defaultAuditLimit = 50

type auditService struct {
	auditRepository store.AuditRepository

	logger *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

func (s *auditService) Record(ctx context.Context, event models.AuditEvent) error {
	if err := s.auditRepository.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("appending audit event: %w", err)
	}
	return nil
}

func (s *auditService) ListEvents(ctx context.Context, userID int64, limit int64) ([]models.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.auditRepository.ListEvents(ctx, userID, limit)
}

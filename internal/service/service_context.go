package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/internal/validators"
	"github.com/truenamepath/truenamepath/models"
)

// contextService is the concrete implementation of ContextService.
// The permanent default context is created at signup by the auth service;
// here it only needs protecting from deletion.
type contextService struct {
	contextRepository store.ContextRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewContextService(contextRepository store.ContextRepository, logger *logger.Logger) ContextService {
	return &contextService{
		contextRepository: contextRepository,
		validator:         validators.NewInputValidator(),
		logger:            logger,
	}
}

func (s *contextService) CreateContext(ctx context.Context, userID int64, req models.CreateContextRequest) (models.Context, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Context{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.contextRepository.CreateContext(ctx, models.Context{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateContextName) {
			return models.Context{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Int64("user_id", userID).Msg("context creation ended with error")
		return models.Context{}, fmt.Errorf("context creation ended with error: %w", err)
	}

	return created, nil
}

func (s *contextService) ListContexts(ctx context.Context, userID int64) ([]models.Context, error) {
	return s.contextRepository.ListContexts(ctx, userID)
}

// DeleteContext removes a context. Permanent contexts refuse deletion even
// when forced; a context still holding assignments refuses unless force is
// set, in which case the assignments cascade first.
func (s *contextService) DeleteContext(ctx context.Context, userID, contextID int64, force bool) error {
	log := logger.FromContext(ctx)

	found, err := s.contextRepository.FindContextByID(ctx, userID, contextID)
	if err != nil {
		if errors.Is(err, store.ErrContextNotFound) {
			return fmt.Errorf("%w: context %d", ErrNotFound, contextID)
		}
		return fmt.Errorf("context lookup failed: %w", err)
	}

	if found.IsPermanent {
		return fmt.Errorf("%w: %w", ErrConflict, ErrPermanentContext)
	}

	count, err := s.contextRepository.CountContextAssignments(ctx, userID, contextID)
	if err != nil {
		return fmt.Errorf("counting context assignments: %w", err)
	}

	if count > 0 {
		if !force {
			return fmt.Errorf("%w: %w", ErrConflict, ErrContextNotEmpty)
		}
		if err := s.contextRepository.DeleteContextAssignments(ctx, userID, contextID); err != nil {
			return fmt.Errorf("cascading context assignments: %w", err)
		}
		log.Info().Int64("user_id", userID).Int64("context_id", contextID).Int64("cascaded", count).Msg("context assignments cascaded")
	}

	if err := s.contextRepository.DeleteContext(ctx, userID, contextID); err != nil {
		if errors.Is(err, store.ErrContextNotFound) {
			return fmt.Errorf("%w: context %d", ErrNotFound, contextID)
		}
		return fmt.Errorf("context deletion ended with error: %w", err)
	}

	return nil
}

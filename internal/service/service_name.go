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

// nameService is the concrete implementation of NameService. Besides CRUD it
// owns two policies: the preferred flag moves between names (setting it
// clears the old holder first), and deletion is guarded so a user can never
// lose their last name or orphan an assignment.
type nameService struct {
	nameRepository       store.NameRepository
	assignmentRepository store.AssignmentRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewNameService(
	nameRepository store.NameRepository,
	assignmentRepository store.AssignmentRepository,
	logger *logger.Logger,
) NameService {
	return &nameService{
		nameRepository:       nameRepository,
		assignmentRepository: assignmentRepository,
		validator:            validators.NewInputValidator(),
		logger:               logger,
	}
}

func (s *nameService) CreateName(ctx context.Context, userID int64, req models.CreateNameRequest) (models.Name, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Name{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if req.IsPreferred {
		if err := s.nameRepository.ClearPreferred(ctx, userID); err != nil {
			return models.Name{}, fmt.Errorf("clearing previous preferred name: %w", err)
		}
	}

	created, err := s.nameRepository.CreateName(ctx, models.Name{
		UserID:      userID,
		Text:        req.Text,
		Category:    req.Category,
		IsPreferred: req.IsPreferred,
		Source:      "user",
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("name creation ended with error")
		return models.Name{}, fmt.Errorf("name creation ended with error: %w", err)
	}

	return created, nil
}

func (s *nameService) GetName(ctx context.Context, userID, nameID int64) (models.Name, error) {
	found, err := s.nameRepository.FindNameByID(ctx, userID, nameID)
	if err != nil {
		if errors.Is(err, store.ErrNameNotFound) {
			return models.Name{}, fmt.Errorf("%w: name %d", ErrNotFound, nameID)
		}
		return models.Name{}, fmt.Errorf("name lookup failed: %w", err)
	}

	return found, nil
}

func (s *nameService) ListNames(ctx context.Context, userID int64) ([]models.Name, error) {
	return s.nameRepository.ListNames(ctx, userID)
}

// UpdateName applies a partial update. Setting is_preferred hands the flag
// over: the current holder is cleared before the target row takes it.
func (s *nameService) UpdateName(ctx context.Context, userID, nameID int64, req models.UpdateNameRequest) (models.Name, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Name{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if req.IsPreferred != nil && *req.IsPreferred {
		if err := s.nameRepository.ClearPreferred(ctx, userID); err != nil {
			return models.Name{}, fmt.Errorf("clearing previous preferred name: %w", err)
		}
	}

	updated, err := s.nameRepository.UpdateName(ctx, userID, nameID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNameNotFound):
			return models.Name{}, fmt.Errorf("%w: name %d", ErrNotFound, nameID)
		case errors.Is(err, store.ErrPreferredNameConflict):
			return models.Name{}, fmt.Errorf("%w: %w", ErrConflict, err)
		default:
			log.Err(err).Int64("user_id", userID).Int64("name_id", nameID).Msg("name update ended with error")
			return models.Name{}, fmt.Errorf("name update ended with error: %w", err)
		}
	}

	return updated, nil
}

// DeleteName removes a name variant unless a guard blocks it:
//   - ErrLastName when it is the user's only remaining name.
//   - ErrNameInUse while any assignment still references it.
func (s *nameService) DeleteName(ctx context.Context, userID, nameID int64) error {
	count, err := s.nameRepository.CountNames(ctx, userID)
	if err != nil {
		return fmt.Errorf("counting names: %w", err)
	}
	if count <= 1 {
		return fmt.Errorf("%w: %w", ErrConflict, ErrLastName)
	}

	referencing, err := s.assignmentRepository.CountByName(ctx, userID, nameID)
	if err != nil {
		return fmt.Errorf("counting referencing assignments: %w", err)
	}
	if referencing > 0 {
		return fmt.Errorf("%w: %w", ErrConflict, ErrNameInUse)
	}

	if err := s.nameRepository.DeleteName(ctx, userID, nameID); err != nil {
		if errors.Is(err, store.ErrNameNotFound) {
			return fmt.Errorf("%w: name %d", ErrNotFound, nameID)
		}
		return fmt.Errorf("name deletion ended with error: %w", err)
	}

	return nil
}

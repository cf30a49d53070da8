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

// assignmentService is the concrete implementation of AssignmentService.
// Single upserts/deletes are thin ownership-checked pass-throughs; BulkSave
// runs the reconciler over the submitted target state.
type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	contextRepository    store.ContextRepository
	nameRepository       store.NameRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewAssignmentService(
	assignmentRepository store.AssignmentRepository,
	contextRepository store.ContextRepository,
	nameRepository store.NameRepository,
	logger *logger.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		contextRepository:    contextRepository,
		nameRepository:       nameRepository,
		validator:            validators.NewInputValidator(),
		logger:               logger,
	}
}

func (s *assignmentService) ListAssignments(ctx context.Context, userID int64, filter store.AssignmentFilter) ([]models.Assignment, error) {
	return s.assignmentRepository.FindAssignments(ctx, userID, filter)
}

// UpsertAssignment binds a name to a (context, property) slot after
// verifying the caller owns both referenced rows.
func (s *assignmentService) UpsertAssignment(ctx context.Context, userID int64, req models.UpsertAssignmentRequest) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := s.contextRepository.FindContextByID(ctx, userID, req.ContextID); err != nil {
		if errors.Is(err, store.ErrContextNotFound) {
			return models.Assignment{}, fmt.Errorf("%w: context %d", ErrNotFound, req.ContextID)
		}
		return models.Assignment{}, fmt.Errorf("checking context ownership: %w", err)
	}

	if _, err := s.nameRepository.FindNameByID(ctx, userID, req.NameID); err != nil {
		if errors.Is(err, store.ErrNameNotFound) {
			return models.Assignment{}, fmt.Errorf("%w: name %d", ErrNotFound, req.NameID)
		}
		return models.Assignment{}, fmt.Errorf("checking name ownership: %w", err)
	}

	saved, err := s.assignmentRepository.UpsertAssignment(ctx, userID, req.ContextID, req.NameID, req.OIDCProperty)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("context_id", req.ContextID).Msg("assignment upsert failed")
		return models.Assignment{}, fmt.Errorf("assignment upsert failed: %w", err)
	}

	return saved, nil
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, userID int64, req models.DeleteAssignmentRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	err := s.assignmentRepository.DeleteAssignment(ctx, userID, req.ContextID, req.OIDCProperty)
	if err != nil {
		if errors.Is(err, store.ErrAssignmentNotFound) {
			return fmt.Errorf("%w: assignment for context %d", ErrNotFound, req.ContextID)
		}
		return fmt.Errorf("assignment delete failed: %w", err)
	}

	return nil
}

// BulkSave moves the user's assignments to the submitted target state.
//
// The sequence is: validate shape, verify ownership of every referenced
// context and name (any foreign id aborts the whole batch before a single
// write), diff against current rows, then apply the plan. A write failure
// on one row is logged and the rest of the batch continues; the returned
// counts cover only the rows that actually landed.
//
// The apply phase is not wrapped in a transaction: each upsert/delete is
// individually atomic, and a crash mid-batch leaves a partially applied
// reconciliation that the next identical submission repairs.
func (s *assignmentService) BulkSave(ctx context.Context, userID int64, changes []models.AssignmentChange) (models.BulkAssignmentResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.BulkAssignmentRequest{Changes: changes}); err != nil {
		return models.BulkAssignmentResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.verifyOwnership(ctx, userID, changes); err != nil {
		return models.BulkAssignmentResponse{}, err
	}

	existing, err := s.assignmentRepository.ListAssignments(ctx, userID)
	if err != nil {
		return models.BulkAssignmentResponse{}, fmt.Errorf("fetching current assignments: %w", err)
	}

	current := make(map[models.AssignmentKey]int64, len(existing))
	for _, a := range existing {
		current[a.Key()] = a.NameID
	}

	plan := reconcile(current, changes)

	response := models.BulkAssignmentResponse{Unchanged: len(plan.Unchanged)}

	for _, change := range plan.ToCreate {
		if _, err := s.assignmentRepository.UpsertAssignment(ctx, userID, change.ContextID, *change.NameID, change.OIDCProperty); err != nil {
			log.Err(err).Int64("context_id", change.ContextID).Str("oidc_property", string(change.OIDCProperty)).Msg("bulk create failed; continuing batch")
			response.Failed++
			continue
		}
		response.Created++
	}

	for _, change := range plan.ToUpdate {
		if _, err := s.assignmentRepository.UpsertAssignment(ctx, userID, change.ContextID, *change.NameID, change.OIDCProperty); err != nil {
			log.Err(err).Int64("context_id", change.ContextID).Str("oidc_property", string(change.OIDCProperty)).Msg("bulk update failed; continuing batch")
			response.Failed++
			continue
		}
		response.Updated++
	}

	for _, change := range plan.ToDelete {
		if err := s.assignmentRepository.DeleteAssignment(ctx, userID, change.ContextID, change.OIDCProperty); err != nil {
			log.Err(err).Int64("context_id", change.ContextID).Str("oidc_property", string(change.OIDCProperty)).Msg("bulk delete failed; continuing batch")
			response.Failed++
			continue
		}
		response.Deleted++
	}

	log.Info().
		Int64("user_id", userID).
		Int("submitted", len(changes)).
		Int("created", response.Created).
		Int("updated", response.Updated).
		Int("deleted", response.Deleted).
		Int("unchanged", response.Unchanged).
		Int("failed", response.Failed).
		Msg("bulk assignment save applied")

	return response, nil
}

// verifyOwnership checks every context and name id the batch references
// against the caller's rows. All-or-nothing: one foreign id rejects the
// batch.
func (s *assignmentService) verifyOwnership(ctx context.Context, userID int64, changes []models.AssignmentChange) error {
	contextIDs := make([]int64, 0, len(changes))
	nameIDs := make([]int64, 0, len(changes))
	seenContexts := make(map[int64]struct{}, len(changes))
	seenNames := make(map[int64]struct{}, len(changes))

	for _, change := range changes {
		if _, ok := seenContexts[change.ContextID]; !ok {
			seenContexts[change.ContextID] = struct{}{}
			contextIDs = append(contextIDs, change.ContextID)
		}
		if change.NameID != nil {
			if _, ok := seenNames[*change.NameID]; !ok {
				seenNames[*change.NameID] = struct{}{}
				nameIDs = append(nameIDs, *change.NameID)
			}
		}
	}

	contexts, err := s.contextRepository.FindContextsByIDs(ctx, userID, contextIDs)
	if err != nil {
		return fmt.Errorf("verifying context ownership: %w", err)
	}
	if len(contexts) != len(contextIDs) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrForeignReference)
	}

	if len(nameIDs) > 0 {
		names, err := s.nameRepository.FindNamesByIDs(ctx, userID, nameIDs)
		if err != nil {
			return fmt.Errorf("verifying name ownership: %w", err)
		}
		if len(names) != len(nameIDs) {
			return fmt.Errorf("%w: %w", ErrValidation, ErrForeignReference)
		}
	}

	return nil
}

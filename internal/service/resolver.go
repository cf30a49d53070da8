// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/models"
)

// FallbackName is the last-resort disclosure when a user has no applicable
// assignment, no preferred name, and no usable account name.
const FallbackName = "Unknown User"

// resolveTarget is what a resolution request boils down to once the context
// name has been looked up: the context row id (when the name matched one of
// the user's contexts) and the requested OIDC property, either of which may
// be absent.
type resolveTarget struct {
	contextID  int64
	hasContext bool
	property   models.OIDCProperty
}

// resolveName is the pure decision procedure behind every resolution request.
// It never touches storage; callers fetch the rows and hand them over.
//
// Precedence, first match wins:
//  1. An assignment binding the requested context — a property-narrowed
//     binding beats the context-wide one when a property was asked for.
//  2. An assignment for the requested OIDC property in any context.
//  3. The user's preferred name.
//  4. The literal fallback.
//
// A matched assignment whose name is missing from names (dangling reference)
// falls through to the next step instead of failing. An unknown context or a
// context with zero assignments likewise falls through cleanly.
//
// assignments are expected in ascending id order; the first hit wins, which
// keeps step 2 deterministic when several contexts bind the same property.
func resolveName(target resolveTarget, assignments []models.Assignment, names map[int64]models.Name, preferred *models.Name, fallback string) models.ResolveResponse {
	// step 1: explicit binding of the requested context
	if target.hasContext {
		if name, ok := matchContext(target, assignments, names); ok {
			return models.ResolveResponse{Name: name.Text, Source: models.SourceContextSpecific}
		}
	}

	// step 2: any binding of the requested property
	if target.property != "" {
		for _, a := range assignments {
			if a.OIDCProperty != target.property {
				continue
			}
			if name, ok := names[a.NameID]; ok {
				return models.ResolveResponse{Name: name.Text, Source: models.SourceOIDCProperty}
			}
		}
	}

	// step 3: the designated preferred name
	if preferred != nil {
		return models.ResolveResponse{Name: preferred.Text, Source: models.SourcePreferredFallback}
	}

	// step 4: last resort
	if fallback == "" {
		fallback = FallbackName
	}
	return models.ResolveResponse{Name: fallback, Source: models.SourceErrorFallback}
}

func matchContext(target resolveTarget, assignments []models.Assignment, names map[int64]models.Name) (models.Name, bool) {
	var contextWide *models.Assignment

	for i, a := range assignments {
		if a.ContextID != target.contextID {
			continue
		}
		if target.property != "" && a.OIDCProperty == target.property {
			if name, ok := names[a.NameID]; ok {
				return name, true
			}
			continue
		}
		if a.OIDCProperty == "" && contextWide == nil {
			contextWide = &assignments[i]
		}
	}

	if contextWide != nil {
		if name, ok := names[contextWide.NameID]; ok {
			return name, true
		}
	}

	return models.Name{}, false
}

// resolverService implements ResolverService by fetching the relevant rows
// and delegating the decision to resolveName. Reads only; audit logging is
// the caller's concern.
type resolverService struct {
	userRepository       store.UserRepository
	nameRepository       store.NameRepository
	contextRepository    store.ContextRepository
	assignmentRepository store.AssignmentRepository

	logger *logger.Logger
}

func NewResolverService(
	userRepository store.UserRepository,
	nameRepository store.NameRepository,
	contextRepository store.ContextRepository,
	assignmentRepository store.AssignmentRepository,
	logger *logger.Logger,
) ResolverService {
	return &resolverService{
		userRepository:       userRepository,
		nameRepository:       nameRepository,
		contextRepository:    contextRepository,
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

// Resolve implements ResolverService. The only error condition besides
// storage failure is an unknown user: "no applicable assignment" is normal
// control flow ending in a fallback, never an error.
func (s *resolverService) Resolve(ctx context.Context, userID int64, req models.ResolveRequest) (models.ResolveResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.ResolveResponse{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return models.ResolveResponse{}, fmt.Errorf("resolving user: %w", err)
	}

	target := resolveTarget{property: req.OIDCProperty}
	if req.ContextName != "" {
		c, err := s.contextRepository.FindContextByName(ctx, userID, req.ContextName)
		switch {
		case err == nil:
			target.contextID = c.ContextID
			target.hasContext = true
		case errors.Is(err, store.ErrContextNotFound):
			// unknown context falls through to the later steps
		default:
			return models.ResolveResponse{}, fmt.Errorf("resolving context: %w", err)
		}
	}

	assignments, names, preferred, err := s.fetchResolutionState(ctx, userID)
	if err != nil {
		return models.ResolveResponse{}, err
	}

	result := resolveName(target, assignments, names, preferred, user.FullName)

	log.Debug().
		Int64("user_id", userID).
		Str("context", req.ContextName).
		Str("oidc_property", string(req.OIDCProperty)).
		Str("source", string(result.Source)).
		Msg("name resolved")

	return result, nil
}

// ResolveBatch implements ResolverService: one fetch of the user's
// resolution state, then the precedence chain per requested context name in
// memory.
func (s *resolverService) ResolveBatch(ctx context.Context, userID int64, contextNames []string, property models.OIDCProperty) (models.BatchResolveResponse, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.BatchResolveResponse{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return models.BatchResolveResponse{}, fmt.Errorf("resolving user: %w", err)
	}

	contexts, err := s.contextRepository.ListContexts(ctx, userID)
	if err != nil {
		return models.BatchResolveResponse{}, fmt.Errorf("listing contexts: %w", err)
	}
	contextsByName := make(map[string]models.Context, len(contexts))
	for _, c := range contexts {
		contextsByName[c.Name] = c
	}

	assignments, names, preferred, err := s.fetchResolutionState(ctx, userID)
	if err != nil {
		return models.BatchResolveResponse{}, err
	}

	results := make(map[string]models.ResolveResponse, len(contextNames))
	for _, contextName := range contextNames {
		target := resolveTarget{property: property}
		if c, ok := contextsByName[contextName]; ok {
			target.contextID = c.ContextID
			target.hasContext = true
		}
		results[contextName] = resolveName(target, assignments, names, preferred, user.FullName)
	}

	return models.BatchResolveResponse{Results: results}, nil
}

// fetchResolutionState gathers everything resolveName needs in a fixed
// number of queries: all assignments, the names they reference, and the
// preferred name.
func (s *resolverService) fetchResolutionState(ctx context.Context, userID int64) ([]models.Assignment, map[int64]models.Name, *models.Name, error) {
	assignments, err := s.assignmentRepository.ListAssignments(ctx, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("listing assignments: %w", err)
	}

	names := make(map[int64]models.Name)
	if len(assignments) > 0 {
		nameIDs := make([]int64, 0, len(assignments))
		seen := make(map[int64]struct{}, len(assignments))
		for _, a := range assignments {
			if _, ok := seen[a.NameID]; ok {
				continue
			}
			seen[a.NameID] = struct{}{}
			nameIDs = append(nameIDs, a.NameID)
		}

		found, err := s.nameRepository.FindNamesByIDs(ctx, userID, nameIDs)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("fetching assigned names: %w", err)
		}
		for _, n := range found {
			names[n.NameID] = n
		}
	}

	var preferred *models.Name
	preferredName, err := s.nameRepository.FindPreferredName(ctx, userID)
	switch {
	case err == nil:
		preferred = &preferredName
	case errors.Is(err, store.ErrNameNotFound):
		// no preferred name: the chain ends in the literal fallback
	default:
		return nil, nil, nil, fmt.Errorf("fetching preferred name: %w", err)
	}

	return assignments, names, preferred, nil
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

// listAssignments returns the caller's assignments, optionally filtered by
// ?context_id= and ?oidc_property=. An explicitly empty oidc_property
// (oidc_property=) selects the context-wide slot only.
func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var filter store.AssignmentFilter
	query := r.URL.Query()

	if raw := query.Get("context_id"); raw != "" {
		contextID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || contextID <= 0 {
			writeBadRequest(w, r, "invalid context_id query parameter")
			return
		}
		filter.ContextID = contextID
	}
	if query.Has("oidc_property") {
		filter.HasProperty = true
		filter.OIDCProperty = models.OIDCProperty(query.Get("oidc_property"))
	}

	assignments, err := h.services.AssignmentService.ListAssignments(ctx, userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, assignments, http.StatusOK)
}

// listOIDCAssignments returns only the caller's property-narrowed
// assignments: the per-claim view backing the OIDC mapping editor.
func (h *Handler) listOIDCAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	assignments, err := h.services.AssignmentService.ListAssignments(ctx, userID, store.AssignmentFilter{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	propertyBound := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.OIDCProperty != "" {
			propertyBound = append(propertyBound, a)
		}
	}

	writeData(w, r, propertyBound, http.StatusOK)
}

func (h *Handler) upsertAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.UpsertAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	saved, err := h.services.AssignmentService.UpsertAssignment(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, saved, http.StatusOK)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.DeleteAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	if err := h.services.AssignmentService.DeleteAssignment(ctx, userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, nil, http.StatusOK)
}

// bulkSaveAssignments accepts a full target state and reconciles the
// caller's assignments to it. The response reports what was created,
// updated, deleted, unchanged, and failed.
func (h *Handler) bulkSaveAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.BulkAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	response, err := h.services.AssignmentService.BulkSave(ctx, userID, req.Changes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, response, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

// selfRequester marks dashboard preview disclosures in the audit log.
const selfRequester = "self"

// resolveSelf previews what a given context (and/or OIDC property) would
// disclose for the authenticated user: GET /api/resolve?context=Work or
// ?oidc_property=nickname. Previews are audited like any other disclosure,
// with requester "self".
func (h *Handler) resolveSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	query := r.URL.Query()
	req := models.ResolveRequest{
		ContextName:  query.Get("context"),
		OIDCProperty: models.OIDCProperty(query.Get("oidc_property")),
	}

	result, err := h.services.ResolverService.Resolve(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if auditErr := h.services.AuditService.Record(ctx, models.AuditEvent{
		UserID:        userID,
		Requester:     selfRequester,
		ContextName:   req.ContextName,
		OIDCProperty:  req.OIDCProperty,
		DisclosedName: result.Name,
		Source:        result.Source,
		TraceID:       utils.GetTraceIDFromContext(ctx),
	}); auditErr != nil {
		log.Err(auditErr).Int64("user_id", userID).Msg("audit append failed for self preview")
	}

	writeData(w, r, result, http.StatusOK)
}

// resolveBatch previews many contexts at once for the dashboard overview.
// Batch previews are not audited per row; they carry no third-party
// disclosure.
func (h *Handler) resolveBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.BatchResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	if len(req.Contexts) == 0 {
		writeBadRequest(w, r, "no context names provided")
		return
	}

	result, err := h.services.ResolverService.ResolveBatch(ctx, userID, req.Contexts, req.OIDCProperty)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, result, http.StatusOK)
}

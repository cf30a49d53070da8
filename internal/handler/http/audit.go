package http

import (
	"net/http"
	"strconv"

	"github.com/truenamepath/truenamepath/internal/utils"
)

// listAuditEvents returns the caller's disclosure history, newest first.
// ?limit= caps the page size; the service applies its default otherwise.
func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeBadRequest(w, r, "invalid limit query parameter")
			return
		}
		limit = parsed
	}

	events, err := h.services.AuditService.ListEvents(ctx, userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, events, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

func (h *Handler) createContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.CreateContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	created, err := h.services.ContextService.CreateContext(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, created, http.StatusCreated)
}

func (h *Handler) listContexts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	contexts, err := h.services.ContextService.ListContexts(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, contexts, http.StatusOK)
}

// deleteContext removes a context. ?force=true cascades its assignments
// instead of refusing with a conflict.
func (h *Handler) deleteContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	contextID, ok := pathID(w, r)
	if !ok {
		return
	}

	force := r.URL.Query().Get("force") == "true"

	if err := h.services.ContextService.DeleteContext(ctx, userID, contextID, force); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, nil, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

func (h *Handler) createName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req models.CreateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	created, err := h.services.NameService.CreateName(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, created, http.StatusCreated)
}

func (h *Handler) listNames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	names, err := h.services.NameService.ListNames(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, names, http.StatusOK)
}

func (h *Handler) getName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	nameID, ok := pathID(w, r)
	if !ok {
		return
	}

	name, err := h.services.NameService.GetName(ctx, userID, nameID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, name, http.StatusOK)
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	nameID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.NameService.UpdateName(ctx, userID, nameID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	nameID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.NameService.DeleteName(ctx, userID, nameID); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, nil, http.StatusOK)
}

// pathID parses the {id} chi URL parameter. On failure it writes the 400
// response itself and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, r, "invalid id in URL path")
		return 0, false
	}
	return id, true
}

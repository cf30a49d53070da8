package http

import (
	"encoding/json"
	"net/http"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	h.issueSessionToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueSessionToken(w, r, foundUser, http.StatusOK)
}

// issueSessionToken mints a session JWT for user and writes it both in the
// Authorization response header and as a TokenResponse in the envelope body.
func (h *Handler) issueSessionToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	expiresIn := int64(0)
	if token.ExpiresAt != nil && token.IssuedAt != nil {
		expiresIn = int64(token.ExpiresAt.Sub(token.IssuedAt.Time).Seconds())
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	writeData(w, r, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, status)
}

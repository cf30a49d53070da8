package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

type authorizeRequest struct {
	ClientID    string `json:"client_id"`
	RedirectURI string `json:"redirect_uri"`
}

type authorizeResponse struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

// tokenError is the RFC 6749 §5.2 error body used when the caller speaks
// form encoding.
type tokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// authorize issues a single-use authorization code binding the logged-in
// user to a registered client. The session-authenticated user is the one
// granting access, which stands in for a consent screen. GET carries the
// client_id/redirect_uri as query params the way a browser redirect would;
// POST carries them as JSON.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}

	var req authorizeRequest
	if r.Method == http.MethodGet {
		query := r.URL.Query()
		req.ClientID = query.Get("client_id")
		req.RedirectURI = query.Get("redirect_uri")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	code, err := h.services.OAuthService.Authorize(ctx, req.ClientID, req.RedirectURI, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, authorizeResponse{Code: code, RedirectURI: req.RedirectURI}, http.StatusOK)
}

// exchangeToken swaps an authorization code for an OAuth bearer token:
// POST /api/oauth/token with grant_type=authorization_code. Standard OAuth
// libraries post form-encoded params (RFC 6749 §4.1.3) and get back the bare
// token object; JSON callers get the usual envelope.
func (h *Handler) exchangeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, formWire, err := decodeTokenRequest(r)
	if err != nil {
		log.Err(err).Msg("Invalid token request was passed")
		writeTokenError(w, r, formWire, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GrantType != "authorization_code" {
		writeTokenError(w, r, formWire, http.StatusBadRequest, "unsupported grant_type")
		return
	}

	token, err := h.services.OAuthService.ExchangeCode(ctx, req.ClientID, req.ClientSecret, req.Code)
	if err != nil {
		if formWire {
			status := statusFromError(err)
			writeTokenError(w, r, true, status, err.Error())
			return
		}
		writeError(w, r, err)
		return
	}

	expiresIn := int64(0)
	if token.ExpiresAt != nil && token.IssuedAt != nil {
		expiresIn = int64(token.ExpiresAt.Sub(token.IssuedAt.Time).Seconds())
	}

	resp := models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}

	if formWire {
		if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
			log.Err(err).Msg("error writing token response")
		}
		return
	}

	writeData(w, r, resp, http.StatusOK)
}

// decodeTokenRequest reads the token request from either wire format and
// reports which one the caller used. Form-encoded clients may pass their
// credentials via HTTP Basic auth instead of body params.
func decodeTokenRequest(r *http.Request) (tokenRequest, bool, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return tokenRequest{}, true, err
		}

		req := tokenRequest{
			GrantType:    r.PostForm.Get("grant_type"),
			ClientID:     r.PostForm.Get("client_id"),
			ClientSecret: r.PostForm.Get("client_secret"),
			Code:         r.PostForm.Get("code"),
		}
		if id, secret, ok := r.BasicAuth(); ok {
			req.ClientID, req.ClientSecret = id, secret
		}

		return req, true, nil
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return tokenRequest{}, false, err
	}

	return req, false, nil
}

func writeTokenError(w http.ResponseWriter, r *http.Request, formWire bool, status int, description string) {
	if !formWire {
		writeBadRequest(w, r, description)
		return
	}

	code := "invalid_grant"
	switch status {
	case http.StatusBadRequest:
		code = "invalid_request"
	case http.StatusUnauthorized:
		code = "invalid_client"
	case http.StatusInternalServerError:
		code = "server_error"
	}

	if _, err := utils.WriteJSON(w, tokenError{Error: code, ErrorDescription: description}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token error")
	}
}

// resolveForClient discloses the contextual name the calling client is
// entitled to see. Auth and identity come from the OAuth bearer token; an
// empty body falls back to the client's pinned context.
func (h *Handler) resolveForClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no user ID in request context")
		return
	}
	clientID, found := utils.GetClientIDFromContext(ctx)
	if !found {
		writeUnauthorized(w, r, "no client ID in request context")
		return
	}

	var req models.ResolveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			writeBadRequest(w, r, "Invalid JSON was passed")
			return
		}
	}

	result, err := h.services.OAuthService.ResolveForClient(ctx, clientID, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, result, http.StatusOK)
}

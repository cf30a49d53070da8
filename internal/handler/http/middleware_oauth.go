package http

import (
	"context"
	"net/http"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/utils"
)

// oauthAuth is the bearer-token counterpart of auth for third-party clients.
//
// It validates the token via [service.OAuthService.ParseToken], which
// requires token_use=oauth and a client id claim, then stores both the
// subject user's ID and the client's ID in the request context
// ([utils.UserIDCtxKey], [utils.ClientIDCtxKey]). A session token presented
// here is rejected with 401, mirroring how auth rejects OAuth tokens.
func (h *Handler) oauthAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w, r, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.OAuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing oauth token")
			writeUnauthorized(w, r, http.StatusText(http.StatusUnauthorized))
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.ClientIDCtxKey, token.ClientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

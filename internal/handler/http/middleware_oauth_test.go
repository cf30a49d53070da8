package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

func oauthToken(signed string, userID int64, clientID string) models.Token {
	now := time.Now()
	return models.Token{
		TokenClaims: models.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			Use:      models.TokenUseOAuth,
			ClientID: clientID,
		},
		SignedString: signed,
		UserID:       userID,
	}
}

func TestOAuthAuth_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", nil)
	rec := httptest.NewRecorder()

	h.oauthAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOAuthAuth_SessionTokenRejected(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ParseToken(gomock.Any(), "session-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	h.oauthAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOAuthAuth_ValidTokenInjectsIdentities(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ParseToken(gomock.Any(), "bearer-token").
		Return(oauthToken("bearer-token", 42, "hr-portal"), nil)

	var (
		seenUserID   int64
		seenClientID string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, found := utils.GetUserIDFromContext(r.Context())
		require.True(t, found)
		clientID, found := utils.GetClientIDFromContext(r.Context())
		require.True(t, found)

		seenUserID, seenClientID = userID, clientID
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", nil)
	req.Header.Set("Authorization", "Bearer bearer-token")
	rec := httptest.NewRecorder()

	h.oauthAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 42, seenUserID)
	assert.Equal(t, "hr-portal", seenClientID)
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/truenamepath/truenamepath/internal/service"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

func withClient(r *http.Request, clientID string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.ClientIDCtxKey, clientID)
	return r.WithContext(ctx)
}

func TestAuthorize_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		Authorize(gomock.Any(), "hr-portal", "https://hr.example.edu/callback", int64(42)).
		Return("one-time-code", nil)

	body := `{"client_id": "hr-portal", "redirect_uri": "https://hr.example.edu/callback"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/oauth/authorize", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.authorize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "one-time-code", data["code"])
	assert.Equal(t, "https://hr.example.edu/callback", data["redirect_uri"])
}

// The browser-style variant carries the grant request as query params.
func TestAuthorize_GETQueryParams(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		Authorize(gomock.Any(), "hr-portal", "https://hr.example.edu/callback", int64(42)).
		Return("one-time-code", nil)

	target := "/api/oauth/authorize?client_id=hr-portal&redirect_uri=" + url.QueryEscape("https://hr.example.edu/callback")
	req := withUser(httptest.NewRequest(http.MethodGet, target, nil), 42)
	rec := httptest.NewRecorder()

	h.authorize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "one-time-code", data["code"])
}

func TestAuthorize_RedirectURIMismatch(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		Authorize(gomock.Any(), "hr-portal", "https://evil.example.com/", int64(42)).
		Return("", service.ErrValidation)

	body := `{"client_id": "hr-portal", "redirect_uri": "https://evil.example.com/"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/oauth/authorize", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.authorize(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthorize_NoSession(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/authorize", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.authorize(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExchangeToken_JSONBody(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ExchangeCode(gomock.Any(), "hr-portal", "s3cret", "one-time-code").
		Return(oauthToken("oauth.bearer.jwt", 42, "hr-portal"), nil)

	body := `{"grant_type": "authorization_code", "client_id": "hr-portal", "client_secret": "s3cret", "code": "one-time-code"}`
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.exchangeToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "oauth.bearer.jwt", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
	assert.EqualValues(t, 3600, data["expires_in"])
}

// Standard OAuth libraries post form-encoded params and expect the bare
// RFC 6749 token object back, not the envelope.
func TestExchangeToken_FormBody(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ExchangeCode(gomock.Any(), "hr-portal", "s3cret", "one-time-code").
		Return(oauthToken("oauth.bearer.jwt", 42, "hr-portal"), nil)

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {"hr-portal"},
		"client_secret": {"s3cret"},
		"code":          {"one-time-code"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.exchangeToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"oauth.bearer.jwt"`)
	assert.NotContains(t, rec.Body.String(), `"success"`)
}

func TestExchangeToken_FormBasicAuth(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ExchangeCode(gomock.Any(), "hr-portal", "s3cret", "one-time-code").
		Return(oauthToken("oauth.bearer.jwt", 42, "hr-portal"), nil)

	form := url.Values{
		"grant_type": {"authorization_code"},
		"code":       {"one-time-code"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("hr-portal", "s3cret")
	rec := httptest.NewRecorder()

	h.exchangeToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExchangeToken_UnsupportedGrantType(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"grant_type": "client_credentials"}`
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.exchangeToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported grant_type")
}

func TestExchangeToken_FormWrongSecret(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ExchangeCode(gomock.Any(), "hr-portal", "wrong", "one-time-code").
		Return(models.Token{}, service.ErrInvalidClientCredentials)

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {"hr-portal"},
		"client_secret": {"wrong"},
		"code":          {"one-time-code"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.exchangeToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_client")
}

func TestResolveForClient_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ResolveForClient(gomock.Any(), "hr-portal", int64(42), models.ResolveRequest{ContextName: "Work"}).
		Return(models.ResolveResponse{Name: "W. Li", Source: models.SourceContextSpecific}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", strings.NewReader(`{"context": "Work"}`))
	req = withClient(withUser(req, 42), "hr-portal")
	rec := httptest.NewRecorder()

	h.resolveForClient(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "W. Li", data["name"])
}

// An empty body defers entirely to the client's pinned context.
func TestResolveForClient_EmptyBody(t *testing.T) {
	h, m := newTestHandler(t)
	m.oauth.EXPECT().
		ResolveForClient(gomock.Any(), "hr-portal", int64(42), models.ResolveRequest{}).
		Return(models.ResolveResponse{Name: "Wei", Source: models.SourceContextSpecific}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", nil)
	req = withClient(withUser(req, 42), "hr-portal")
	rec := httptest.NewRecorder()

	h.resolveForClient(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveForClient_NoClientID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/oauth/resolve", nil), 42)
	rec := httptest.NewRecorder()

	h.resolveForClient(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

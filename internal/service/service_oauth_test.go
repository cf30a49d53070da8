// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/mock"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

type oauthSvcMocks struct {
	oauth    *mock.MockOAuthRepository
	resolver *mock.MockResolverService
	audit    *mock.MockAuditService
}

func newTestOAuthSvc(ctrl *gomock.Controller) (OAuthService, oauthSvcMocks) {
	m := oauthSvcMocks{
		oauth:    mock.NewMockOAuthRepository(ctrl),
		resolver: mock.NewMockResolverService(ctrl),
		audit:    mock.NewMockAuditService(ctrl),
	}
	cfg := config.App{
		TokenSignKey:       "test-sign-key",
		TokenIssuer:        "truenamepath-test",
		OAuthTokenDuration: time.Hour,
	}
	svc := NewOAuthService(m.oauth, m.resolver, m.audit, cfg, logger.Nop())
	return svc, m
}

func testClient(t *testing.T, secret string) models.OAuthClient {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return models.OAuthClient{
		ClientID:    "hr-portal",
		SecretHash:  string(hash),
		DisplayName: "HR Portal",
		RedirectURI: "https://hr.example.edu/callback",
		ContextName: "Work",
	}
}

func TestOAuthService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	client := testClient(t, "client-secret")

	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(client, nil)
	m.oauth.EXPECT().
		CreateAuthorizationCode(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, grant models.AuthorizationCode) error {
			assert.Equal(t, "hr-portal", grant.ClientID)
			assert.Equal(t, int64(1), grant.UserID)
			assert.NotEmpty(t, grant.Code)
			assert.WithinDuration(t, time.Now().Add(authorizationCodeTTL), grant.ExpiresAt, time.Minute)
			return nil
		})

	code, err := svc.Authorize(ctx, "hr-portal", "https://hr.example.edu/callback", 1)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
}

func TestOAuthService_Authorize_RedirectURIMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)

	_, err := svc.Authorize(ctx, "hr-portal", "https://evil.example.com/callback", 1)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrRedirectURIMismatch)
}

func TestOAuthService_ExchangeCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	client := testClient(t, "client-secret")

	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(client, nil)
	m.oauth.EXPECT().ConsumeAuthorizationCode(ctx, "grant-code").Return(models.AuthorizationCode{
		Code:     "grant-code",
		ClientID: "hr-portal",
		UserID:   1,
	}, nil)

	token, err := svc.ExchangeCode(ctx, "hr-portal", "client-secret", "grant-code")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, models.TokenUseOAuth, token.Use)
	assert.Equal(t, "hr-portal", token.ClientID)
}

func TestOAuthService_ExchangeCode_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)

	_, err := svc.ExchangeCode(ctx, "hr-portal", "wrong-secret", "grant-code")
	assert.ErrorIs(t, err, ErrInvalidClientCredentials)
}

func TestOAuthService_ExchangeCode_ForeignCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)
	m.oauth.EXPECT().ConsumeAuthorizationCode(ctx, "grant-code").Return(models.AuthorizationCode{
		Code:     "grant-code",
		ClientID: "other-app",
		UserID:   1,
	}, nil)

	_, err := svc.ExchangeCode(ctx, "hr-portal", "client-secret", "grant-code")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOAuthService_ExchangeCode_UsedOrExpiredCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)
	m.oauth.EXPECT().ConsumeAuthorizationCode(ctx, "grant-code").Return(models.AuthorizationCode{}, store.ErrAuthorizationCodeInvalid)

	_, err := svc.ExchangeCode(ctx, "hr-portal", "client-secret", "grant-code")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, store.ErrAuthorizationCodeInvalid)
}

func TestOAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	client := testClient(t, "client-secret")

	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(client, nil)
	m.oauth.EXPECT().ConsumeAuthorizationCode(ctx, "grant-code").Return(models.AuthorizationCode{
		Code:     "grant-code",
		ClientID: "hr-portal",
		UserID:   1,
	}, nil)

	token, err := svc.ExchangeCode(ctx, "hr-portal", "client-secret", "grant-code")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(1), parsed.UserID)
	assert.Equal(t, "hr-portal", parsed.ClientID)
}

func TestOAuthService_ParseToken_RejectsSessionToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOAuthSvc(ctrl)

	sessionToken, err := utils.GenerateJWTToken("truenamepath-test", 1, models.TokenUseSession, "", time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), sessionToken.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestOAuthService_ResolveForClient_DefaultsToPinnedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)
	m.resolver.EXPECT().
		Resolve(ctx, int64(1), models.ResolveRequest{ContextName: "Work"}).
		Return(models.ResolveResponse{Name: "W. Li", Source: models.SourceContextSpecific}, nil)
	m.audit.EXPECT().
		Record(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.AuditEvent) error {
			assert.Equal(t, "hr-portal", event.Requester)
			assert.Equal(t, "Work", event.ContextName)
			assert.Equal(t, "W. Li", event.DisclosedName)
			assert.Equal(t, models.SourceContextSpecific, event.Source)
			return nil
		})

	resp, err := svc.ResolveForClient(ctx, "hr-portal", 1, models.ResolveRequest{})
	require.NoError(t, err)
	assert.Equal(t, "W. Li", resp.Name)
}

func TestOAuthService_ResolveForClient_AuditFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().FindClientByClientID(ctx, "hr-portal").Return(testClient(t, "client-secret"), nil)
	m.resolver.EXPECT().
		Resolve(ctx, int64(1), gomock.Any()).
		Return(models.ResolveResponse{Name: "W. Li", Source: models.SourceContextSpecific}, nil)
	m.audit.EXPECT().Record(ctx, gomock.Any()).Return(assert.AnError)

	resp, err := svc.ResolveForClient(ctx, "hr-portal", 1, models.ResolveRequest{})
	require.NoError(t, err)
	assert.Equal(t, "W. Li", resp.Name)
}

func TestOAuthService_SeedClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestOAuthSvc(ctrl)

	ctx := context.Background()
	m.oauth.EXPECT().
		UpsertClient(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, client models.OAuthClient) (models.OAuthClient, error) {
			assert.Equal(t, "hr-portal", client.ClientID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte("client-secret")))
			return client, nil
		})

	err := svc.SeedClient(ctx, "hr-portal", "client-secret", "HR Portal", "https://hr.example.edu/callback", "Work")
	require.NoError(t, err)
}

func TestOAuthService_SeedClient_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOAuthSvc(ctrl)

	err := svc.SeedClient(context.Background(), "", "client-secret", "HR Portal", "https://hr.example.edu/callback", "")
	assert.ErrorIs(t, err, ErrValidation)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/truenamepath/truenamepath/internal/config"
	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/internal/utils"
	"github.com/truenamepath/truenamepath/models"
)

// authorizationCodeTTL is the validity window of a single-use code issued
// during the authorization flow.
const authorizationCodeTTL = 10 * time.Minute

// oauthService is the concrete implementation of OAuthService: a demo-grade
// authorization-code flow over registered clients, bearer tokens carrying
// token_use=oauth, and audited name disclosure on behalf of clients.
type oauthService struct {
	oauthRepository store.OAuthRepository
	resolver        ResolverService
	audit           AuditService

	codes *utils.UUIDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewOAuthService(
	oauthRepository store.OAuthRepository,
	resolver ResolverService,
	audit AuditService,
	cfg config.App,
	logger *logger.Logger,
) OAuthService {
	return &oauthService{
		oauthRepository: oauthRepository,
		resolver:        resolver,
		audit:           audit,
		codes:           utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.OAuthTokenDuration,
		logger:          logger,
	}
}

// Authorize issues a single-use authorization code for the authenticated
// user after checking the client is registered and the redirect URI matches
// its registration exactly.
func (s *oauthService) Authorize(ctx context.Context, clientID, redirectURI string, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	client, err := s.oauthRepository.FindClientByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrOAuthClientNotFound) {
			return "", fmt.Errorf("%w: client %q", ErrNotFound, clientID)
		}
		return "", fmt.Errorf("client lookup failed: %w", err)
	}

	if redirectURI != client.RedirectURI {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrRedirectURIMismatch)
	}

	code := s.codes.Generate()
	err = s.oauthRepository.CreateAuthorizationCode(ctx, models.AuthorizationCode{
		Code:      code,
		ClientID:  client.ClientID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(authorizationCodeTTL),
	})
	if err != nil {
		return "", fmt.Errorf("storing authorization code: %w", err)
	}

	log.Info().Str("client_id", clientID).Int64("user_id", userID).Msg("authorization code issued")

	return code, nil
}

// ExchangeCode swaps a pending authorization code for an OAuth bearer token.
// The client must present its secret; the code must be unused, unexpired,
// and issued to this client.
func (s *oauthService) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (models.Token, error) {
	log := logger.FromContext(ctx)

	client, err := s.oauthRepository.FindClientByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrOAuthClientNotFound) {
			return models.Token{}, ErrInvalidClientCredentials
		}
		return models.Token{}, fmt.Errorf("client lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(clientSecret)); err != nil {
		log.Err(err).Str("client_id", clientID).Msg("client secret mismatch")
		return models.Token{}, ErrInvalidClientCredentials
	}

	grant, err := s.oauthRepository.ConsumeAuthorizationCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrAuthorizationCodeInvalid) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return models.Token{}, fmt.Errorf("consuming authorization code: %w", err)
	}

	if grant.ClientID != client.ClientID {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, store.ErrAuthorizationCodeInvalid)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, grant.UserID, models.TokenUseOAuth, client.ClientID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("client_id", clientID).Int64("user_id", grant.UserID).Msg("oauth token issued")

	return token, nil
}

// ParseToken validates and parses a raw OAuth bearer token. The counterpart
// of the session-side check: token_use must be oauth and the client id claim
// must be present, so a dashboard session token cannot reach the client API.
// Failures are normalised to ErrTokenIsExpiredOrInvalid.
func (s *oauthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Use != models.TokenUseOAuth || token.ClientID == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveForClient resolves the contextual name a third-party client is
// entitled to see. An empty request falls back to the client's pinned
// context. Every disclosure is appended to the audit log; a failed audit
// write is logged, never surfaced, so bookkeeping cannot block disclosure.
func (s *oauthService) ResolveForClient(ctx context.Context, clientID string, userID int64, req models.ResolveRequest) (models.ResolveResponse, error) {
	log := logger.FromContext(ctx)

	client, err := s.oauthRepository.FindClientByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrOAuthClientNotFound) {
			return models.ResolveResponse{}, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
		}
		return models.ResolveResponse{}, fmt.Errorf("client lookup failed: %w", err)
	}

	if req.ContextName == "" && client.ContextName != "" {
		req.ContextName = client.ContextName
	}

	result, err := s.resolver.Resolve(ctx, userID, req)
	if err != nil {
		return models.ResolveResponse{}, err
	}

	if auditErr := s.audit.Record(ctx, models.AuditEvent{
		UserID:        userID,
		Requester:     client.ClientID,
		ContextName:   req.ContextName,
		OIDCProperty:  req.OIDCProperty,
		DisclosedName: result.Name,
		Source:        result.Source,
		TraceID:       utils.GetTraceIDFromContext(ctx),
	}); auditErr != nil {
		log.Err(auditErr).Str("client_id", clientID).Int64("user_id", userID).Msg("audit append failed for disclosure")
	}

	return result, nil
}

// SeedClient registers or refreshes a client row from configuration. Only
// the bcrypt hash of the secret is persisted.
func (s *oauthService) SeedClient(ctx context.Context, clientID, secret, displayName, redirectURI, contextName string) error {
	if clientID == "" || secret == "" || redirectURI == "" {
		return fmt.Errorf("%w: client id, secret and redirect URI are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing client secret: %w", err)
	}

	_, err = s.oauthRepository.UpsertClient(ctx, models.OAuthClient{
		ClientID:    clientID,
		SecretHash:  string(hash),
		DisplayName: displayName,
		RedirectURI: redirectURI,
		ContextName: contextName,
	})
	if err != nil {
		return fmt.Errorf("seeding oauth client: %w", err)
	}

	s.logger.Info().Str("client_id", clientID).Msg("oauth client seeded")

	return nil
}

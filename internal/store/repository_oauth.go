package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/truenamepath/truenamepath/internal/logger"
	"github.com/truenamepath/truenamepath/models"
)

// oauthRepository is the PostgreSQL-backed implementation of
// [OAuthRepository], operating on the "oauth_clients" and
// "authorization_codes" tables.
type oauthRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOAuthRepository constructs an [OAuthRepository] backed by the provided
// database connection and logger.
func NewOAuthRepository(db *DB, logger *logger.Logger) OAuthRepository {
	logger.Debug().Msg("creating oauth repository")
	return &oauthRepository{
		db:     db,
		logger: logger,
	}
}

func scanOAuthClient(row interface{ Scan(...any) error }) (models.OAuthClient, error) {
	var c models.OAuthClient
	err := row.Scan(&c.ID, &c.ClientID, &c.SecretHash, &c.DisplayName, &c.RedirectURI, &c.ContextName, &c.CreatedAt)
	return c, err
}

// UpsertClient registers or refreshes a third-party client. Used by the
// startup seeding of the demo application.
func (r *oauthRepository) UpsertClient(ctx context.Context, client models.OAuthClient) (models.OAuthClient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertOAuthClient,
		client.ClientID, client.SecretHash, client.DisplayName, client.RedirectURI, client.ContextName)

	saved, err := scanOAuthClient(row)
	if err != nil {
		log.Err(err).Str("func", "*oauthRepository.UpsertClient").Str("client_id", client.ClientID).Msg("error upserting oauth client")
		return models.OAuthClient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindClientByClientID retrieves a registered client.
// Returns [ErrOAuthClientNotFound] when the client_id is unknown.
func (r *oauthRepository) FindClientByClientID(ctx context.Context, clientID string) (models.OAuthClient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findOAuthClient, clientID)
	found, err := scanOAuthClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OAuthClient{}, ErrOAuthClientNotFound
		}
		log.Err(err).Str("func", "*oauthRepository.FindClientByClientID").Str("client_id", clientID).Msg("error finding oauth client")
		return models.OAuthClient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// CreateAuthorizationCode stores a freshly issued single-use code.
func (r *oauthRepository) CreateAuthorizationCode(ctx context.Context, code models.AuthorizationCode) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createAuthorizationCode,
		code.Code, code.ClientID, code.UserID, code.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*oauthRepository.CreateAuthorizationCode").Str("client_id", code.ClientID).Msg("error creating authorization code")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ConsumeAuthorizationCode marks the code used and returns its grant in one
// statement, so a code can never be exchanged twice even under concurrent
// requests.
// Returns [ErrAuthorizationCodeInvalid] for unknown, expired, or used codes.
func (r *oauthRepository) ConsumeAuthorizationCode(ctx context.Context, code string) (models.AuthorizationCode, error) {
	log := logger.FromContext(ctx)

	var consumed models.AuthorizationCode
	row := r.db.QueryRowContext(ctx, consumeAuthorizationCode, code)
	if err := row.Scan(&consumed.Code, &consumed.ClientID, &consumed.UserID, &consumed.ExpiresAt, &consumed.Used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthorizationCode{}, ErrAuthorizationCodeInvalid
		}
		log.Err(err).Str("func", "*oauthRepository.ConsumeAuthorizationCode").Msg("error consuming authorization code")
		return models.AuthorizationCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return consumed, nil
}

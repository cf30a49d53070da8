package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/truenamepath/truenamepath/internal/store"
	"github.com/truenamepath/truenamepath/models"
)

type AuthService interface {
	Signup(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NameService interface {
	CreateName(ctx context.Context, userID int64, req models.CreateNameRequest) (models.Name, error)
	GetName(ctx context.Context, userID, nameID int64) (models.Name, error)
	ListNames(ctx context.Context, userID int64) ([]models.Name, error)
	UpdateName(ctx context.Context, userID, nameID int64, req models.UpdateNameRequest) (models.Name, error)
	DeleteName(ctx context.Context, userID, nameID int64) error
}

type ContextService interface {
	CreateContext(ctx context.Context, userID int64, req models.CreateContextRequest) (models.Context, error)
	ListContexts(ctx context.Context, userID int64) ([]models.Context, error)
	DeleteContext(ctx context.Context, userID, contextID int64, force bool) error
}

type AssignmentService interface {
	ListAssignments(ctx context.Context, userID int64, filter store.AssignmentFilter) ([]models.Assignment, error)
	UpsertAssignment(ctx context.Context, userID int64, req models.UpsertAssignmentRequest) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, userID int64, req models.DeleteAssignmentRequest) error

	// BulkSave reconciles the submitted target state against current
	// assignments and applies the computed plan. The returned counts
	// reflect only rows whose write actually succeeded.
	BulkSave(ctx context.Context, userID int64, changes []models.AssignmentChange) (models.BulkAssignmentResponse, error)
}

type ResolverService interface {
	// Resolve returns the single name to disclose for the request,
	// following the precedence chain: context assignment, OIDC-property
	// assignment, preferred name, literal fallback.
	Resolve(ctx context.Context, userID int64, req models.ResolveRequest) (models.ResolveResponse, error)

	// ResolveBatch resolves many context names for one user in one pass:
	// all assignments are fetched once and the chain is applied per
	// requested context in memory.
	ResolveBatch(ctx context.Context, userID int64, contextNames []string, property models.OIDCProperty) (models.BatchResolveResponse, error)
}

type OAuthService interface {
	// Authorize issues a single-use authorization code binding the
	// authenticated user to the client.
	Authorize(ctx context.Context, clientID, redirectURI string, userID int64) (string, error)

	// ExchangeCode swaps an authorization code for a bearer token after
	// checking the client's credentials.
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (models.Token, error)

	// ParseToken validates a raw OAuth bearer token, requiring
	// token_use=oauth and a non-empty client id claim.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveForClient resolves a name for a third-party client, defaulting
	// to the client's pinned context, and records the disclosure in the
	// audit log.
	ResolveForClient(ctx context.Context, clientID string, userID int64, req models.ResolveRequest) (models.ResolveResponse, error)

	// SeedClient registers (or refreshes) a client from configuration.
	SeedClient(ctx context.Context, clientID, secret, displayName, redirectURI, contextName string) error
}

type AuditService interface {
	// Record appends a disclosure event. Failures are the caller's to log;
	// a lost audit row never fails the disclosure itself.
	Record(ctx context.Context, event models.AuditEvent) error
	ListEvents(ctx context.Context, userID int64, limit int64) ([]models.AuditEvent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

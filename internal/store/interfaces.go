package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"

	"github.com/truenamepath/truenamepath/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// NameRepository persists the name variants of a user. All operations are
// scoped by user id.
type NameRepository interface {
	CreateName(ctx context.Context, name models.Name) (models.Name, error)
	FindNameByID(ctx context.Context, userID, nameID int64) (models.Name, error)
	FindNamesByIDs(ctx context.Context, userID int64, nameIDs []int64) ([]models.Name, error)
	ListNames(ctx context.Context, userID int64) ([]models.Name, error)

	// FindPreferredName returns the user's preferred name, or ErrNameNotFound
	// when none is flagged. If corrupted data holds more than one preferred
	// row the lowest name_id wins, so resolution stays deterministic.
	FindPreferredName(ctx context.Context, userID int64) (models.Name, error)

	// ClearPreferred removes the preferred flag from whichever name
	// currently carries it. Used when the flag moves to another name.
	ClearPreferred(ctx context.Context, userID int64) error

	// UpdateName applies the non-nil fields of update to the name row.
	UpdateName(ctx context.Context, userID, nameID int64, update models.UpdateNameRequest) (models.Name, error)
	DeleteName(ctx context.Context, userID, nameID int64) error
	CountNames(ctx context.Context, userID int64) (int64, error)
}

// ContextRepository persists the disclosure contexts of a user.
type ContextRepository interface {
	CreateContext(ctx context.Context, c models.Context) (models.Context, error)
	FindContextByID(ctx context.Context, userID, contextID int64) (models.Context, error)
	FindContextByName(ctx context.Context, userID int64, name string) (models.Context, error)
	FindContextsByIDs(ctx context.Context, userID int64, contextIDs []int64) ([]models.Context, error)
	ListContexts(ctx context.Context, userID int64) ([]models.Context, error)
	DeleteContext(ctx context.Context, userID, contextID int64) error

	// CountContextAssignments returns how many assignments reference the
	// context; used as the deletion guard.
	CountContextAssignments(ctx context.Context, userID, contextID int64) (int64, error)

	// DeleteContextAssignments removes every assignment bound to the
	// context (the forced-cascade path).
	DeleteContextAssignments(ctx context.Context, userID, contextID int64) error
}

// AssignmentFilter narrows FindAssignments. Zero values mean "no filter".
type AssignmentFilter struct {
	ContextID    int64
	OIDCProperty models.OIDCProperty
	HasProperty  bool // distinguishes "property = ''" from "any property"
}

// AssignmentRepository persists name-to-context bindings. The uniqueness
// key is (user_id, context_id, oidc_property) with empty property meaning
// the context-wide slot.
type AssignmentRepository interface {
	FindAssignments(ctx context.Context, userID int64, filter AssignmentFilter) ([]models.Assignment, error)
	ListAssignments(ctx context.Context, userID int64) ([]models.Assignment, error)
	UpsertAssignment(ctx context.Context, userID, contextID, nameID int64, property models.OIDCProperty) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, userID, contextID int64, property models.OIDCProperty) error

	// CountByName returns how many assignments reference the name; used as
	// the name-deletion guard.
	CountByName(ctx context.Context, userID, nameID int64) (int64, error)
}

// OAuthRepository persists registered third-party clients and their
// single-use authorization codes.
type OAuthRepository interface {
	UpsertClient(ctx context.Context, client models.OAuthClient) (models.OAuthClient, error)
	FindClientByClientID(ctx context.Context, clientID string) (models.OAuthClient, error)
	CreateAuthorizationCode(ctx context.Context, code models.AuthorizationCode) error

	// ConsumeAuthorizationCode marks the code used and returns its grant.
	// Codes that are unknown, expired, or already used yield
	// ErrAuthorizationCodeInvalid.
	ConsumeAuthorizationCode(ctx context.Context, code string) (models.AuthorizationCode, error)
}

// AuditRepository appends and lists name disclosure events.
type AuditRepository interface {
	AppendEvent(ctx context.Context, event models.AuditEvent) error
	ListEvents(ctx context.Context, userID int64, limit int64) ([]models.AuditEvent, error)
}

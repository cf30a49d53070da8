package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNameNotFound is returned when a name variant (identified by
	// name_id and user_id) does not exist in the database.
	ErrNameNotFound = errors.New("name not found")

	// ErrContextNotFound is returned when a context (identified by
	// context_id or context_name, scoped by user_id) does not exist.
	ErrContextNotFound = errors.New("context not found")

	// ErrDuplicateContextName is returned when inserting a context whose
	// display name collides with an existing context of the same user.
	ErrDuplicateContextName = errors.New("context name already exists")

	// ErrAssignmentNotFound is returned when a delete targets an
	// assignment slot that holds no binding.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrOAuthClientNotFound is returned when no registered client matches
	// the presented client_id.
	ErrOAuthClientNotFound = errors.New("oauth client not found")

	// ErrAuthorizationCodeInvalid is returned when an authorization code is
	// unknown, expired, or has already been exchanged.
	ErrAuthorizationCodeInvalid = errors.New("authorization code invalid")

	// ErrPreferredNameConflict is returned when the partial unique index on
	// (user_id) WHERE is_preferred rejects a second preferred name.
	ErrPreferredNameConflict = errors.New("user already has a preferred name")

	// ErrExecutingQuery wraps driver-level failures executing a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow wraps failures scanning a result row.
	ErrScanningRow = errors.New("error scanning row")
)

package service

import "errors"

// Error taxonomy. The three class sentinels below are what the HTTP layer
// maps to status codes; specific errors wrap one of them so handlers match
// the class with errors.Is and still log the detail.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForeignReference — a submitted batch references a context or name
	// the caller does not own; the whole batch is rejected before any write.
	ErrForeignReference = errors.New("referenced context or name does not belong to user")

	// ErrLastName — the user's only remaining name cannot be deleted.
	ErrLastName = errors.New("cannot delete the last remaining name")

	// ErrNameInUse — a name referenced by an assignment cannot be deleted.
	ErrNameInUse = errors.New("name is referenced by an assignment")

	// ErrPermanentContext — the default context refuses deletion, forced or not.
	ErrPermanentContext = errors.New("permanent context cannot be deleted")

	// ErrContextNotEmpty — a context with assignments refuses deletion
	// unless the caller forces the cascade.
	ErrContextNotEmpty = errors.New("context has assignments; use force to cascade")

	ErrInvalidClientCredentials = errors.New("invalid client credentials")
	ErrRedirectURIMismatch      = errors.New("redirect URI does not match registration")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password is required")
	ErrInvalidFullName = errors.New("full name is required")

	ErrEmptyNameText       = errors.New("name text is required")
	ErrNameTextTooLong     = errors.New("name text exceeds 100 characters")
	ErrInvalidNameCategory = errors.New("invalid name category")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")

	ErrEmptyContextName         = errors.New("context name is required")
	ErrContextNameTooLong       = errors.New("context name exceeds 64 characters")
	ErrInvalidContextNameSymbol = errors.New("context name may contain only letters, digits, spaces, '-' and '_'")

	ErrInvalidContextID    = errors.New("invalid context ID")
	ErrInvalidNameID       = errors.New("invalid name ID")
	ErrInvalidOIDCProperty = errors.New("invalid OIDC property")
	ErrEmptyChanges        = errors.New("changes list cannot be empty")

	ErrEmptyResolveTarget = errors.New("a context name or an OIDC property is required")
)

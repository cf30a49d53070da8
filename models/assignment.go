package models

import "time"

// OIDCProperty is a standard OpenID Connect claim name an assignment may be
// narrowed to, so that one context can disclose different name variants for
// different claims (given_name vs. nickname, say).
type OIDCProperty string

const (
	OIDCGivenName         OIDCProperty = "given_name"
	OIDCFamilyName        OIDCProperty = "family_name"
	OIDCName              OIDCProperty = "name"
	OIDCNickname          OIDCProperty = "nickname"
	OIDCDisplayName       OIDCProperty = "display_name"
	OIDCPreferredUsername OIDCProperty = "preferred_username"
	OIDCMiddleName        OIDCProperty = "middle_name"
)

var validOIDCProperties = map[OIDCProperty]struct{}{
	OIDCGivenName:         {},
	OIDCFamilyName:        {},
	OIDCName:              {},
	OIDCNickname:          {},
	OIDCDisplayName:       {},
	OIDCPreferredUsername: {},
	OIDCMiddleName:        {},
}

// ValidOIDCProperty reports whether p is one of the supported claim names.
func ValidOIDCProperty(p OIDCProperty) bool {
	_, ok := validOIDCProperties[p]
	return ok
}

// Assignment binds exactly one Name to one Context for one user, optionally
// narrowed to a single OIDC property. At most one assignment exists per
// (user, context, property-or-empty) triple; the empty property is the
// context-wide binding.
type Assignment struct {
	// AssignmentID is the unique identifier of the binding.
	AssignmentID int64 `json:"id"`

	// UserID is the owning user.
	UserID int64 `json:"-"`

	// ContextID is the bound context.
	ContextID int64 `json:"context_id"`

	// NameID is the bound name variant.
	NameID int64 `json:"name_id"`

	// OIDCProperty narrows the binding to a single claim. Empty means the
	// binding covers the whole context.
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`

	// CreatedAt is the creation timestamp. Reconciliation updates rows in
	// place precisely so this survives a bulk save.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "assignments"
}

// AssignmentKey identifies the slot an assignment occupies: one per
// (context, property-or-empty) pair. It is the key of the uniqueness
// constraint the reconciler diffs against.
type AssignmentKey struct {
	ContextID    int64
	OIDCProperty OIDCProperty
}

// Key returns the constraint key of the assignment.
func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{ContextID: a.ContextID, OIDCProperty: a.OIDCProperty}
}

// AssignmentSource tags which branch of the resolution precedence chain
// produced a disclosed name. Returned alongside every resolved name so the
// dashboard can label provenance.
type AssignmentSource string

const (
	// SourceContextSpecific — an explicit assignment for the requested
	// context matched.
	SourceContextSpecific AssignmentSource = "context_specific"

	// SourceOIDCProperty — no context matched, but an assignment for the
	// requested OIDC property did.
	SourceOIDCProperty AssignmentSource = "oidc_property"

	// SourcePreferredFallback — no assignment matched; the user's
	// preferred name was disclosed.
	SourcePreferredFallback AssignmentSource = "preferred_fallback"

	// SourceErrorFallback — the user has no applicable assignment and no
	// preferred name; the last-resort fallback was disclosed.
	SourceErrorFallback AssignmentSource = "error_fallback"
)

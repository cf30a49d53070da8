package models

import "time"

// NameCategory classifies what kind of name variant a Name row holds.
type NameCategory string

const (
	CategoryLegal        NameCategory = "legal"
	CategoryPreferred    NameCategory = "preferred"
	CategoryNickname     NameCategory = "nickname"
	CategoryAlias        NameCategory = "alias"
	CategoryProfessional NameCategory = "professional"
	CategoryCultural     NameCategory = "cultural"
)

// Name is a single text variant of a user's identity (e.g. the legal name,
// a nickname, a professional name). A user owns any number of Name rows;
// at most one of them carries IsPreferred=true.
type Name struct {
	// NameID is the unique identifier of the name variant.
	NameID int64 `json:"id"`

	// UserID is the owning user. All reads and writes are scoped by it.
	UserID int64 `json:"-"`

	// Text is the name string itself, exactly as the user entered it.
	Text string `json:"text"`

	// Category is one of the NameCategory constants, or an OIDC property
	// tag (e.g. "given_name") for claim-specific variants.
	Category NameCategory `json:"category"`

	// IsPreferred marks the user's designated default name. The resolver
	// falls back to it when no assignment matches a request.
	IsPreferred bool `json:"is_preferred"`

	// Verified indicates the name was confirmed against an external
	// source (e.g. the university registry). Informational only; the
	// resolver does not consult it.
	Verified bool `json:"verified"`

	// Source records where the name came from ("signup", "user", "import").
	Source string `json:"source,omitempty"`

	// CreatedAt is the creation timestamp. Used as the deterministic
	// tie-break when data corruption produces more than one preferred name.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Name model.
func (n Name) TableName() string {
	return "names"
}

// validCategories is the closed set accepted on create/update, OIDC property
// tags aside.
var validCategories = map[NameCategory]struct{}{
	CategoryLegal:        {},
	CategoryPreferred:    {},
	CategoryNickname:     {},
	CategoryAlias:        {},
	CategoryProfessional: {},
	CategoryCultural:     {},
}

// ValidCategory reports whether c is an accepted name category. OIDC property
// tags double as categories for claim-specific name variants.
func ValidCategory(c NameCategory) bool {
	if _, ok := validCategories[c]; ok {
		return true
	}
	return ValidOIDCProperty(OIDCProperty(c))
}

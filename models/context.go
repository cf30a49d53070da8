package models

import "time"

// Context is a user-defined disclosure scope ("Work", "Gaming Friends").
// Assignments bind name variants to contexts; a resolution request against
// a context discloses the bound name.
type Context struct {
	// ContextID is the unique identifier of the context.
	ContextID int64 `json:"id"`

	// UserID is the owning user.
	UserID int64 `json:"-"`

	// Name is the display name of the context. Unique per owner,
	// restricted to letters, digits, spaces, '-' and '_', 1..64 runes.
	Name string `json:"name"`

	// Description is optional free text shown in the dashboard.
	Description string `json:"description,omitempty"`

	// IsPermanent marks the non-deletable "Default" context created at
	// signup. Permanent contexts refuse deletion even with force.
	IsPermanent bool `json:"is_permanent"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Context model.
func (c Context) TableName() string {
	return "contexts"
}

// DefaultContextName is the display name of the permanent context every
// account receives at signup.
const DefaultContextName = "Default"

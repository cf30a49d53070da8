// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package models

// AssignmentChange is one entry of a bulk assignment submission: the target
// state for a single (context, property) slot. A nil NameID clears the slot.
type AssignmentChange struct {
	// ContextID is the context whose binding is being set.
	ContextID int64 `json:"context_id"`

	// NameID is the name to bind, or nil to remove the binding.
	// Removing an absent binding is a no-op, not an error.
	NameID *int64 `json:"name_id"`

	// OIDCProperty optionally narrows the slot to a single claim.
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`
}

// Key returns the constraint key the change targets.
func (c AssignmentChange) Key() AssignmentKey {
	return AssignmentKey{ContextID: c.ContextID, OIDCProperty: c.OIDCProperty}
}

// BulkAssignmentRequest is the payload of POST /api/assignments/bulk and
// POST /api/assignments/oidc/batch: the full target state the reconciler
// diffs against existing rows.
type BulkAssignmentRequest struct {
	Changes []AssignmentChange `json:"changes"`
}

// UpsertAssignmentRequest is the payload of POST/PUT /api/assignments.
type UpsertAssignmentRequest struct {
	ContextID    int64        `json:"context_id"`
	NameID       int64        `json:"name_id"`
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`
}

// DeleteAssignmentRequest is the payload of DELETE /api/assignments.
type DeleteAssignmentRequest struct {
	ContextID    int64        `json:"context_id"`
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`
}

// ResolveRequest describes a resolution target: a context name, an OIDC
// property, or both. Used by GET /api/resolve and POST /api/oauth/resolve.
type ResolveRequest struct {
	ContextName  string       `json:"context,omitempty"`
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`
}

// BatchResolveRequest is the payload of POST /api/resolve/batch: the context
// names to resolve in one pass plus an optional property narrowing.
type BatchResolveRequest struct {
	Contexts     []string     `json:"contexts"`
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`
}

// CreateNameRequest is the payload of POST /api/names.
type CreateNameRequest struct {
	Text        string       `json:"text"`
	Category    NameCategory `json:"category"`
	IsPreferred bool         `json:"is_preferred"`
}

// UpdateNameRequest is the payload of PUT /api/names/{id}. Only non-nil
// fields are applied (partial update).
type UpdateNameRequest struct {
	Text        *string       `json:"text,omitempty"`
	Category    *NameCategory `json:"category,omitempty"`
	IsPreferred *bool         `json:"is_preferred,omitempty"`
}

// CreateContextRequest is the payload of POST /api/contexts.
type CreateContextRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

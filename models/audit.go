// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package models

import "time"

// AuditEvent records a single name disclosure: who asked, what they asked
// for, and which name left the system. Appended by the callers of the
// resolver (never the resolver itself) and surfaced on the dashboard.
type AuditEvent struct {
	ID int64 `json:"id"`

	// UserID is the user whose name was disclosed.
	UserID int64 `json:"-"`

	// Requester identifies who asked: an OAuth client_id, or "self" for
	// dashboard previews.
	Requester string `json:"requester"`

	// ContextName is the context the request targeted, if any.
	ContextName string `json:"context_name,omitempty"`

	// OIDCProperty is the claim the request targeted, if any.
	OIDCProperty OIDCProperty `json:"oidc_property,omitempty"`

	// DisclosedName is the name text that was returned.
	DisclosedName string `json:"disclosed_name"`

	// Source is the precedence branch that produced the name.
	Source AssignmentSource `json:"source"`

	// TraceID ties the event to the request logs.
	TraceID string `json:"trace_id,omitempty"`

	// CreatedAt is the disclosure timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuditEvent model.
func (e AuditEvent) TableName() string {
	return "audit_events"
}

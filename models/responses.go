// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package models

import "time"

// Envelope is the uniform response body of every API endpoint:
// {success, data|error, request_id, timestamp}.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is the machine-readable error class
	// (validation_error, not_found, conflict, unauthorized, internal_error).
	Code string `json:"code"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// ResolveResponse is the body of a successful resolution: the single name
// string to disclose plus the precedence branch that produced it.
type ResolveResponse struct {
	Name   string           `json:"name"`
	Source AssignmentSource `json:"source"`
}

// BatchResolveResponse maps each requested context name to its resolution.
type BatchResolveResponse struct {
	Results map[string]ResolveResponse `json:"results"`
}

// BulkAssignmentResponse reports what a bulk save actually did. The four
// counts partition the submitted list; Failed counts rows whose write failed
// after validation (they are excluded from the other buckets' applied totals).
type BulkAssignmentResponse struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// TokenResponse is the body returned by the auth and OAuth token endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package models

import "time"

// OAuthClient is a registered third-party application allowed to request
// contextually appropriate names via the bearer-token API.
type OAuthClient struct {
	// ID is the internal row identifier.
	ID int64 `json:"-"`

	// ClientID is the public identifier the application presents.
	ClientID string `json:"client_id"`

	// SecretHash is the bcrypt hash of the client secret. Never serialized.
	SecretHash string `json:"-"`

	// DisplayName is shown on the consent screen.
	DisplayName string `json:"display_name"`

	// RedirectURI is the sole redirect target accepted during the
	// authorization-code flow.
	RedirectURI string `json:"redirect_uri"`

	// ContextName optionally pins the client to one of the authorizing
	// user's contexts; resolutions for this client then target that
	// context by default.
	ContextName string `json:"context_name,omitempty"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the OAuthClient model.
func (c OAuthClient) TableName() string {
	return "oauth_clients"
}

// AuthorizationCode is a single-use grant linking an authorizing user to a
// client. Consumed during the token exchange; expires after a short window.
type AuthorizationCode struct {
	Code      string    `json:"code"`
	ClientID  string    `json:"-"`
	UserID    int64     `json:"-"`
	ExpiresAt time.Time `json:"-"`
	Used      bool      `json:"-"`
}

// TableName returns the name of the database table
// associated with the AuthorizationCode model.
func (c AuthorizationCode) TableName() string {
	return "authorization_codes"
}

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUse distinguishes the two bearer token kinds the API issues.
type TokenUse string

const (
	// TokenUseSession — a dashboard session token issued at signup/login.
	// Grants access to the full /api surface of the owning user.
	TokenUseSession TokenUse = "session"

	// TokenUseOAuth — a token issued to a third-party application via the
	// OAuth flow. Grants access to /api/oauth/resolve only.
	TokenUseOAuth TokenUse = "oauth"
)

// TokenClaims is the claim set embedded in every issued JWT: the standard
// registered claims plus the token use marker and, for OAuth tokens, the
// requesting client's identifier.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Use marks what the token is good for; see [TokenUse].
	Use TokenUse `json:"token_use"`

	// ClientID identifies the OAuth client the token was issued to.
	// Empty on session tokens.
	ClientID string `json:"client_id,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during parsing to avoid repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set (sub, exp, iat, iss,
	// token_use, client_id).
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

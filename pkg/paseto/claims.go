package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// GetUserID implements the authorize.ClaimsProvider interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetSessionID returns the session id claim if present.
func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

// GetTokenType returns the token type as a string.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired reports whether the token is past its expiry.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

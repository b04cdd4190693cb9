package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	AccountID  uuid.UUID `json:"aid"`
	Kind       string    `json:"kind"`
	RoleID     string    `json:"rid,omitempty"`
	MustChange bool      `json:"mcp"`
	jwt.RegisteredClaims
}

// TokenSubject carries the account attributes embedded in an access token.
type TokenSubject struct {
	AccountID  uuid.UUID
	Kind       string
	RoleID     *uuid.UUID
	MustChange bool
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the subject.
	GenerateAccessToken(subject TokenSubject) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

package domain

import (
	"context"
	"time"
)

// RoleAdmin is the role carried by admin tokens.
const RoleAdmin = "admin"

// PasswordHasher hashes and verifies passwords (e.g. bcrypt with salt).
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AdminToken is returned by a successful admin login.
// swagger:model AdminToken
type AdminToken struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminAuthService exchanges the admin password for a token.
type AdminAuthService interface {
	Login(ctx context.Context, password string) (*AdminToken, error)
}

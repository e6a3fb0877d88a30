package services

import (
	"context"
	"fmt"
	"time"

	"weddingrsvp/internal/domain"
)

const adminSubject = "admin"

type adminAuthService struct {
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	salt      string
	hash      string
	jwtExpiry time.Duration
}

// NewAdminAuthService hashes the configured admin password once so the plain text is not kept around.
func NewAdminAuthService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, adminPassword string, jwtExpiry time.Duration) (domain.AdminAuthService, error) {
	if adminPassword == "" {
		return nil, fmt.Errorf("admin password is empty")
	}
	salt, err := hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := hasher.Hash(salt, adminPassword)
	if err != nil {
		return nil, err
	}
	return &adminAuthService{
		hasher:    hasher,
		issuer:    issuer,
		salt:      salt,
		hash:      hash,
		jwtExpiry: jwtExpiry,
	}, nil
}

func (s *adminAuthService) Login(ctx context.Context, password string) (*domain.AdminToken, error) {
	if password == "" {
		return nil, domain.InvalidInputf("password is required")
	}
	if err := s.hasher.Compare(s.hash, s.salt, password); err != nil {
		return nil, fmt.Errorf("invalid admin password: %w", domain.ErrUnauthorized)
	}
	expiresAt := time.Now().Add(s.jwtExpiry)
	token, err := s.issuer.Issue(adminSubject, []string{domain.RoleAdmin}, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AdminToken{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt.UTC()}, nil
}

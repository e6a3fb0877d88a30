package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"weddingrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthService_Login(t *testing.T) {
	ctx := context.Background()
	issuer := &fakeTokenIssuer{}
	svc, err := NewAdminAuthService(&fakePasswordHasher{salt: "s"}, issuer, "wedding2025", time.Hour)
	require.NoError(t, err)

	tok, err := svc.Login(ctx, "wedding2025")
	require.NoError(t, err)
	assert.Equal(t, "token-for-admin", tok.Token)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)
	assert.Equal(t, []string{domain.RoleAdmin}, issuer.lastRoles)

	_, err = svc.Login(ctx, "guess")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(ctx, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	issuer.err = errors.New("sign failed")
	_, err = svc.Login(ctx, "wedding2025")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestNewAdminAuthService_Errors(t *testing.T) {
	_, err := NewAdminAuthService(&fakePasswordHasher{}, &fakeTokenIssuer{}, "", time.Hour)
	require.Error(t, err)

	_, err = NewAdminAuthService(&fakePasswordHasher{saltErr: errors.New("no entropy")}, &fakeTokenIssuer{}, "pw", time.Hour)
	require.Error(t, err)
}

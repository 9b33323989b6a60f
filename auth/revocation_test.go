// auth/revocation_test.go
package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/cache"
	logger "github.com/tgechev/gonotes/logging"
)

func newRevocationList(t *testing.T) *auth.RevocationList {
	t.Helper()
	logger.InitLogger(t.TempDir())
	store := cache.NewMemory()
	t.Cleanup(store.Close)
	return auth.NewRevocationList(store)
}

func TestRevoke_ThenIsRevoked(t *testing.T) {
	revoked := newRevocationList(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	isRevoked, err := revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.False(t, isRevoked)

	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))

	isRevoked, err = revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestRevoke_IsIdempotent(t *testing.T) {
	revoked := newRevocationList(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))
	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))

	isRevoked, err := revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestRevoke_PastExpiryIsNoOp(t *testing.T) {
	revoked := newRevocationList(t)
	ctx := context.Background()
	exp := time.Now().Add(-time.Minute)

	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))

	isRevoked, err := revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.False(t, isRevoked)
}

func TestRevocation_ExpiresWithToken(t *testing.T) {
	revoked := newRevocationList(t)
	ctx := context.Background()
	exp := time.Now().Add(30 * time.Millisecond)

	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))

	isRevoked, err := revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.True(t, isRevoked)

	time.Sleep(50 * time.Millisecond)

	isRevoked, err = revoked.IsRevoked(ctx, "user-1", exp)
	require.NoError(t, err)
	assert.False(t, isRevoked, "revocation entry must not outlive the token")
}

func TestRevocation_ScopedToUserAndExpiry(t *testing.T) {
	revoked := newRevocationList(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	require.NoError(t, revoked.Revoke(ctx, "user-1", exp))

	isRevoked, err := revoked.IsRevoked(ctx, "user-2", exp)
	require.NoError(t, err)
	assert.False(t, isRevoked)

	isRevoked, err = revoked.IsRevoked(ctx, "user-1", exp.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, isRevoked)
}

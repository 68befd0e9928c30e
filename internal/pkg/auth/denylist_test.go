package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDenyList(t *testing.T) (*TokenDenyList, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenDenyList(client), mr
}

func TestDenyListRevokeAndCheck(t *testing.T) {
	dl, _ := newTestDenyList(t)
	ctx := context.Background()

	revoked, err := dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, dl.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = dl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestDenyListEntryExpires(t *testing.T) {
	dl, mr := newTestDenyList(t)
	ctx := context.Background()

	require.NoError(t, dl.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestDenyListExpiredTokenNeedsNoEntry(t *testing.T) {
	dl, mr := newTestDenyList(t)

	require.NoError(t, dl.Revoke(context.Background(), "jti-1", time.Now().Add(-time.Minute)))
	assert.Empty(t, mr.Keys())
}

func TestDenyListNilClient(t *testing.T) {
	dl := NewTokenDenyList(nil)
	ctx := context.Background()

	require.NoError(t, dl.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err := dl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

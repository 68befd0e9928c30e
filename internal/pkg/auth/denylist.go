package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denyListKeyPrefix = "denylist:jti:"

// TokenDenyList records revoked token IDs in redis until the token would
// have expired anyway. A nil client disables revocation.
type TokenDenyList struct {
	client *redis.Client
}

// NewTokenDenyList creates a deny-list backed by the given redis client.
func NewTokenDenyList(client *redis.Client) *TokenDenyList {
	return &TokenDenyList{client: client}
}

// Revoke marks the token ID revoked until expiresAt. Already-expired
// tokens need no entry.
func (d *TokenDenyList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if d.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denyListKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("deny-list set: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID is on the deny-list. Redis
// outages report not-revoked; the token's own expiry still bounds it.
func (d *TokenDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.client == nil || tokenID == "" {
		return false, nil
	}
	_, err := d.client.Get(ctx, denyListKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deny-list get: %w", err)
	}
	return true, nil
}

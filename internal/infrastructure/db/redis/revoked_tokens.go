package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokens stores logged-out token ids until their natural expiry.
// Key format: revoked:<jti>
type RevokedTokens struct {
	client *redis.Client
}

// NewRevokedTokens creates a RevokedTokens store wrapping the given client.
func NewRevokedTokens(client *redis.Client) *RevokedTokens {
	return &RevokedTokens{client: client}
}

// Revoke marks the token id as revoked. The key expires when the token would
// have expired anyway, so the set never grows unbounded.
func (r *RevokedTokens) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Token already expired; nothing worth storing.
		return nil
	}
	if err := r.client.Set(ctx, r.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked.
func (r *RevokedTokens) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevokedTokens) key(jti string) string {
	return "revoked:" + jti
}

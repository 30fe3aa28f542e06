package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist tracks revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const denylistKeyPrefix = "auth:denylist:"

type redisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist returns a Redis-backed denylist. Entries carry a TTL equal
// to the remaining token lifetime so Redis reclaims them on its own.
func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err()
}

func (d *redisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

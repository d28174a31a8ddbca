package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Revoker remembers logged-out tokens until they would have expired anyway.
type Revoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedPrefix = "revoked:"

type RedisRevoker struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisRevoker(client redis.Cmdable) *RedisRevoker {
	return &RedisRevoker{
		client: client,
		now:    time.Now,
	}
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err(); err != nil {
		zap.L().Error("failed to revoke token", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		zap.L().Error("failed to check token revocation", zap.String("jti", jti), zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

// NoopRevoker is used when no redis is configured: logout succeeds but the
// token stays valid until it expires.
type NoopRevoker struct{}

func (NoopRevoker) Revoke(context.Context, string, time.Time) error { return nil }

func (NoopRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }

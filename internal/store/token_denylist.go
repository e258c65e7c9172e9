// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/logger"
)

const revokedTokenKeyPrefix = "revoked-token:"

// ErrEmptyTokenID is returned when a token without a jti is revoked.
var ErrEmptyTokenID = errors.New("token has no id")

// redisKeyValue is the subset of the go-redis client used by the denylist.
type redisKeyValue interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisTokenDenylist keeps one key per revoked token that expires together
// with the token, so the set never grows beyond the live tokens.
type redisTokenDenylist struct {
	client redisKeyValue
	logger *logger.Logger
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// NewRedisTokenDenylist returns a [TokenDenylist] stored in Redis.
func NewRedisTokenDenylist(client redisKeyValue, logger *logger.Logger) TokenDenylist {
	return &redisTokenDenylist{client: client, logger: logger}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return ErrEmptyTokenID
	}
	if ttl <= 0 {
		// already expired, validation rejects it anyway
		return nil
	}

	if err := d.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisTokenDenylist.Revoke").Msg("failed to store revoked token")
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}

	n, err := d.client.Exists(ctx, revokedTokenKeyPrefix+jti).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisTokenDenylist.IsRevoked").Msg("failed to check revoked token")
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return n > 0, nil
}

// nopTokenDenylist is used when Redis is not configured: logout is then
// client-side only and tokens stay valid until they expire.
type nopTokenDenylist struct{}

func NewNopTokenDenylist() TokenDenylist {
	return nopTokenDenylist{}
}

func (nopTokenDenylist) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (nopTokenDenylist) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}

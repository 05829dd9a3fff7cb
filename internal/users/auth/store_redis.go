// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/constants"
)

// RedisResetTokenRepository stores reset tokens as TTL'd Redis keys.
// Expiry handling is free: Redis drops the key, Consume sees a miss.
type RedisResetTokenRepository struct {
	client *redis.Client
}

func NewRedisResetTokenRepository(client *redis.Client) *RedisResetTokenRepository {
	return &RedisResetTokenRepository{client: client}
}

func (repository *RedisResetTokenRepository) Save(context context.Context, tokenHash, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixResetToken + tokenHash

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("auth: failed to save reset token: %w", err)
	}
	return nil
}

func (repository *RedisResetTokenRepository) Consume(context context.Context, tokenHash string) (string, error) {
	key := constants.RedisPrefixResetToken + tokenHash

	// GETDEL makes fetch+invalidate one atomic command, so a token can
	// never be redeemed twice even under concurrent submissions.
	userID, err := repository.client.GetDel(context, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.NotFound("Reset token")
	}
	if err != nil {
		return "", fmt.Errorf("auth: failed to consume reset token: %w", err)
	}

	return userID, nil
}

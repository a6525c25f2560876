package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

// StoreToken keeps a token -> user_id lookup so a session can be
// revoked server-side before the JWT itself expires.
func (r *TokenRepository) StoreToken(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	key := fmt.Sprintf("token:lookup:%s", token)

	if err := r.client.Set(ctx, key, fmt.Sprintf("%d", userID), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}

	return nil
}

func (r *TokenRepository) GetTokenUserID(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf("token:lookup:%s", token)

	userID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

func (r *TokenRepository) DeleteToken(ctx context.Context, token string) error {
	key := fmt.Sprintf("token:lookup:%s", token)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete token from Redis: %w", err)
	}

	return nil
}

package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userId uint) (string, error) {
	sessionId := uuid.NewString()
	key := sessionKey(sessionId)
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userId), 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionId, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionId string) (uint, error) {
	key := sessionKey(sessionId)
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	userId, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, nil
	}

	// Sliding expiry: activity keeps the session alive.
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return 0, err
	}

	return uint(userId), nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionId string) error {
	return s.client.Del(ctx, sessionKey(sessionId)).Err()
}

func sessionKey(sessionId string) string {
	return "session:" + sessionId
}

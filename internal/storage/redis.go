package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValue - реализация KeyValue поверх Redis
type RedisKeyValue struct {
	client *redis.Client
}

func NewRedisKeyValue(client *redis.Client) *RedisKeyValue {
	return &RedisKeyValue{client: client}
}

// Get возвращает значение по ключу, "" если ключа нет
func (s *RedisKeyValue) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("storage: failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set сохраняет значение без срока жизни
func (s *RedisKeyValue) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: failed to set key %s: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ; удаление отсутствующего ключа не считается ошибкой
func (s *RedisKeyValue) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("storage: failed to remove key %s: %w", key, err)
	}
	return nil
}

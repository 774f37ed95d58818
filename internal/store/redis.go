package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

const defaultRedisPrefix = "achievement-tracker:"

// RedisKV stores values under prefixed redis keys without expiry.
type RedisKV struct {
	client *redis.Client
	prefix string
}

func NewRedisKV(url string) (*RedisKV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return NewRedisKVFromClient(redis.NewClient(opt), defaultRedisPrefix), nil
}

func NewRedisKVFromClient(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, srvErrors.NewKeyNotFoundError(key)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKV) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}

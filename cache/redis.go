package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pokeroster:response:"

type RedisConfig struct {
	Addr string
	TTL  time.Duration
	// Client overrides Addr when set
	Client redis.UniversalClient
}

func (cfg *RedisConfig) Validate() error {
	if cfg.Client == nil && cfg.Addr == "" {
		return errors.New("redis cache needs an address")
	}

	return nil
}

// Redis shares cached responses between machines or containers
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedis(cfg RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		client = redis.NewClient(&redis.Options{Addr: cfg.Addr})
	}

	return &Redis{client: client, ttl: cfg.TTL}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("reading %s from redis cache: %w", key, err)
	}

	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing %s to redis cache: %w", key, err)
	}

	return nil
}

// Clear only removes keys under this cache's prefix
func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("scanning redis cache: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clearing redis cache: %w", err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

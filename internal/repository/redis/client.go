package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to addr and pings it. A nil client and the ping error
// are returned when Redis is unreachable; callers run without a cache then.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis at %s: %v. Replays will not be cached.", addr, err)
		client.Close()
		return nil, err
	}

	log.Println("[REDIS] Connected successfully")
	return client, nil
}

// RedisCache acts as a wrapper around redis.Client to implement the
// replay CacheRepository interface
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set stores a key-value pair with expiration
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key. A missing key is reported as redis.Nil.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Del deletes keys
func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

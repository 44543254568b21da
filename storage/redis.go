package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// Prefix is prepended to every key so several sites can share a database.
	Prefix string
}

// ErrEmptyAddress is returned when the Redis address is not configured.
var ErrEmptyAddress = errors.New("storage: redis address is required")

// redisTimeout bounds every round trip, including the initial ping.
const redisTimeout = 5 * time.Second

// RedisSlot stores values as plain Redis strings. Processes sharing a
// database see each other's writes; the last writer wins.
type RedisSlot struct {
	client *redis.Client
	prefix string
}

// NewRedisSlot connects to Redis and verifies the connection.
func NewRedisSlot(cfg RedisConfig) (*RedisSlot, error) {
	if cfg.Address == "" {
		return nil, ErrEmptyAddress
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: redis ping failed: %w", err)
	}
	return &RedisSlot{client: client, prefix: cfg.Prefix}, nil
}

// Get returns the value stored under key.
func (s *RedisSlot) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Put replaces the value stored under key. Values never expire.
func (s *RedisSlot) Put(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Close closes the client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}

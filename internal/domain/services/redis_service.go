package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceRedisService defines the Redis cache service
type InterfaceRedisService interface {
	Available() bool
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	SetBytes(key string, value []byte, expiration time.Duration) error
	GetBytes(key string) ([]byte, error)
	Delete(key string) error
}

// RedisService handles Redis operations. The client may be nil when Redis is
// not configured; every operation then reports unavailable and callers are
// expected to fall through to the store.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service from the configuration.
// An empty RedisHost leaves the client nil.
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	var client *redis.Client
	if cfg.RedisHost != "" {
		client = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// NewRedisServiceWithClient wraps an already constructed client
func NewRedisServiceWithClient(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Available reports whether a Redis client is configured and reachable
func (s *RedisService) Available() bool {
	if s.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(s.Ctx, 500*time.Millisecond)
	defer cancel()
	return s.Client.Ping(ctx).Err() == nil
}

// 1. Set stores a JSON-encoded value with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	if s.Client == nil {
		return redis.ErrClosed
	}
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2. Get fetches a JSON-encoded value into dest
func (s *RedisService) Get(key string, dest interface{}) error {
	if s.Client == nil {
		return redis.ErrClosed
	}
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3. SetBytes stores a raw payload with expiration
func (s *RedisService) SetBytes(key string, value []byte, expiration time.Duration) error {
	if s.Client == nil {
		return redis.ErrClosed
	}
	return s.Client.Set(s.Ctx, key, value, expiration).Err()
}

// 4. GetBytes fetches a raw payload
func (s *RedisService) GetBytes(key string) ([]byte, error) {
	if s.Client == nil {
		return nil, redis.ErrClosed
	}
	val, err := s.Client.Get(s.Ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	return val, nil
}

// 5. Delete removes a key
func (s *RedisService) Delete(key string) error {
	if s.Client == nil {
		return redis.ErrClosed
	}
	return s.Client.Del(s.Ctx, key).Err()
}

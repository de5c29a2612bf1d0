package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "satpam:token:"

// RedisStore implements Store on top of a Redis client. Token expiry rides on
// Redis TTLs, so no cleanup process is needed.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the default "satpam:token:" key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a Redis-backed token store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Exists reports whether the token is known and not expired.
func (s *RedisStore) Exists(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, ErrEmptyToken
	}

	n, err := s.client.Exists(ctx, s.keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Save registers the token with the given TTL.
func (s *RedisStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	return s.client.Set(ctx, s.keyPrefix+token, time.Now().Unix(), ttl).Err()
}

// Touch extends a known token's TTL.
func (s *RedisStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	ok, err := s.client.Expire(ctx, s.keyPrefix+token, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenNotFound
	}
	return nil
}

// Delete removes the token.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	return s.client.Del(ctx, s.keyPrefix+token).Err()
}

// Config holds the Redis connection configuration.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect establishes a Redis connection using the provided configuration,
// retrying pings up to RetryAttempts times before giving up.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

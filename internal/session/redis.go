package session

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the session in redis, for agents that share one
// operator credential across processes.
type RedisStore struct {
	redis *redis.Client
	key   string
}

// RedisOptions configures BuildRedisClient.
type RedisOptions struct {
	Addr     string
	Password string
	TLS      bool
}

// BuildRedisClient constructs a redis client from options.
func BuildRedisClient(opts RedisOptions) *redis.Client {
	redisOptions := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
	}
	if opts.TLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(redisOptions)
}

// NewRedisStore creates a redis-backed store. name distinguishes multiple
// operator sessions sharing one redis.
func NewRedisStore(client *redis.Client, name string) *RedisStore {
	if name == "" {
		name = "default"
	}
	return &RedisStore{redis: client, key: fmt.Sprintf("mawadk:session:%s", name)}
}

func (r *RedisStore) Load(ctx context.Context) (Session, error) {
	data, err := r.redis.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: redis get: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("session: redis decode: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := r.redis.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	s, err := r.Load(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, cleared(s))
}

var _ Store = (*RedisStore)(nil)

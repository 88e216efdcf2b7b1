package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces Redis keys.
const DefaultPrefix = "orienteer:result:"

// Redis is a Store backed by a Redis server. Entries are JSON documents.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithTTL sets the expiration of stored entries (0 keeps them forever).
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis wraps an existing client.
func NewRedis(client *backend.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DialRedis connects to addr and verifies the connection with PING.
func DialRedis(ctx context.Context, addr string, opts ...RedisOption) (*Redis, error) {
	client := backend.NewClient(&backend.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: redis %s: %w", addr, err)
	}

	return NewRedis(client, opts...), nil
}

func (r *Redis) key(k uint64) string {
	return r.prefix + strconv.FormatUint(k, 16)
}

func (r *Redis) Get(ctx context.Context, key uint64) (Entry, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return Entry{}, ErrMiss
		}
		return Entry{}, fmt.Errorf("cache: redis get: %w", err)
	}
	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		return Entry{}, fmt.Errorf("cache: decode entry: %w", err)
	}

	return e, nil
}

func (r *Redis) Put(ctx context.Context, key uint64, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode entry: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error { return r.client.Close() }

package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"edet/internal/ports"
)

// Options configures the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key so several deployments can share a database
	Prefix string
}

// Store implements ports.KeyValueStore on top of Redis strings
type Store struct {
	client *redis.Client
	prefix string
}

var _ ports.KeyValueStore = (*Store)(nil)

// Open connects to Redis and checks the connection with PING
func Open(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return NewStore(client, opts.Prefix), nil
}

// NewStore wraps an existing client
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Get fetches all keys with a single MGET; missing keys are omitted
func (s *Store) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}

	vals, err := s.client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range vals {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[keys[i]] = []byte(val)
		default:
			return nil, fmt.Errorf("unexpected value type %T for %s", v, keys[i])
		}
	}
	return out, nil
}

// Set writes all entries with a single MSET, which Redis applies atomically
func (s *Store) Set(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]interface{}, 0, len(entries)*2)
	for k, v := range entries {
		pairs = append(pairs, s.key(k), v)
	}
	return s.client.MSet(ctx, pairs...).Err()
}

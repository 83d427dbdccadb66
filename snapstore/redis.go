package snapstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports a Read for a snapshot name with no stored payload.
var ErrNotFound = errors.New("snapstore: snapshot not found")

// Redis keeps snapshots in Redis so they can be shared across replicas and
// survive process restarts. An optional TTL prevents abandoned snapshots
// from accumulating; ttl <= 0 disables expiry.
type Redis struct {
	rdb redis.UniversalClient
	ns  string
	ttl time.Duration
}

var _ Store = (*Redis)(nil)

// NewRedis wraps an existing client. namespace isolates this cache's
// snapshots from other users of the same Redis keyspace.
func NewRedis(client redis.UniversalClient, namespace string, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, errors.New("snapstore: nil redis client")
	}
	return &Redis{rdb: client, ns: namespace, ttl: ttl}, nil
}

func (s *Redis) key(name string) string { return "snapshot:" + s.ns + ":" + name }

func (s *Redis) Write(ctx context.Context, name string, payload []byte) error {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0 // non-positive TTL means no expiry
	}
	if err := s.rdb.Set(ctx, s.key(name), payload, ttl).Err(); err != nil {
		return fmt.Errorf("snapstore: redis set %q: %w", name, err)
	}
	return nil
}

func (s *Redis) Read(ctx context.Context, name string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapstore: redis get %q: %w", name, err)
	}
	return b, nil
}

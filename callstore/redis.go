package callstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps counters as plain integer keys (INCR) and call logs as Redis lists
// (RPUSH / LRANGE). Keys are used verbatim so they share the keyspace of the values
// the cache stores, and a FLUSHDB clears them too.
// The client is borrowed: Redis never closes it.
type Redis struct {
	rdb redis.UniversalClient
}

var _ Recorder = (*Redis)(nil)

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{rdb: client}
}

func (s *Redis) Incr(ctx context.Context, name string) (int64, error) {
	return s.rdb.Incr(ctx, name).Result()
}

func (s *Redis) Count(ctx context.Context, name string) (int64, error) {
	n, err := s.rdb.Get(ctx, name).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis count %q: %w", name, err)
	}
	return n, nil
}

func (s *Redis) Append(ctx context.Context, key, entry string) error {
	return s.rdb.RPush(ctx, key, entry).Err()
}

func (s *Redis) Range(ctx context.Context, key string) ([]string, error) {
	return s.rdb.LRange(ctx, key, 0, -1).Result()
}

package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/kvcache/callstore"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// DefaultAddr is where the default client connects (go-redis defaults).
const DefaultAddr = "localhost:6379"

// Redis stores values with GET/SET and keeps call counters and logs in the same
// database through the embedded callstore.Redis.
type Redis struct {
	*callstore.Redis

	rdb         goredis.UniversalClient
	closeClient bool
	flushAsync  bool
}

var (
	_ pr.Provider        = (*Redis)(nil)
	_ callstore.Recorder = (*Redis)(nil)
)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
	FlushAsync  bool // FLUSHDB ASYNC instead of a blocking FLUSHDB
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{
		Redis:       callstore.NewRedis(cfg.Client),
		rdb:         cfg.Client,
		closeClient: cfg.CloseClient,
		flushAsync:  cfg.FlushAsync,
	}, nil
}

// NewDefault connects to DefaultAddr with library defaults. The provider owns the client.
func NewDefault() *Redis {
	p, _ := New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: DefaultAddr}),
		CloseClient: true,
		FlushAsync:  true,
	})
	return p
}

// Client exposes the underlying client.
func (p *Redis) Client() goredis.UniversalClient { return p.rdb }

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = 0 // no expiry
	}
	if err := p.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

func (p *Redis) Flush(ctx context.Context) error {
	if p.flushAsync {
		return p.rdb.FlushDBAsync(ctx).Err()
	}
	return p.rdb.FlushDB(ctx).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

package kvcache

import (
	"context"
	"time"

	"github.com/unkn0wn-root/kvcache/callstore"
	"github.com/unkn0wn-root/kvcache/codec"
	"github.com/unkn0wn-root/kvcache/internal/scalar"
	pr "github.com/unkn0wn-root/kvcache/provider"
	"github.com/unkn0wn-root/kvcache/provider/redis"
)

// DecodeFunc turns the raw bytes of a stored value into T.
// Codec methods fit directly: codec.Msgpack[User]{}.Decode.
type DecodeFunc[T any] func([]byte) (T, error)

// Cache stores scalar values under random keys in an external store.
// Safe for concurrent use if the provider is.
type Cache struct {
	provider       pr.Provider
	rec            callstore.Recorder
	log            Logger
	hooks          Hooks
	ttl            time.Duration
	computeSetCost SetCostFunc
	newKey         func() string
}

// New connects to the store and flushes it. Every key in the provider's database is
// dropped, including keys this process never wrote. Flush errors (an unreachable
// server, for instance) are returned as the provider reports them.
func New(ctx context.Context, opts Options) (*Cache, error) {
	c := &Cache{
		provider: opts.Provider,
		rec:      opts.Recorder,
		ttl:      opts.TTL,
	}

	// defaults
	if c.provider == nil {
		c.provider = redis.NewDefault()
	}
	if c.rec == nil {
		if r, ok := c.provider.(callstore.Recorder); ok {
			c.rec = r
		}
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.computeSetCost = defaultSetCost
	if opts.ComputeSetCost != nil {
		c.computeSetCost = opts.ComputeSetCost
	}
	c.newKey = defaultKey
	if opts.NewKey != nil {
		c.newKey = opts.NewKey
	}

	if err := c.provider.Flush(ctx); err != nil {
		if opts.Provider == nil {
			_ = c.provider.Close(ctx) // we own it
		}
		return nil, err
	}
	c.hooks.Flushed()
	c.log.Debug("store flushed", Fields{"recorder": c.rec != nil})
	return c, nil
}

// Recorder returns the call record store, or nil when the provider keeps none.
func (c *Cache) Recorder() callstore.Recorder { return c.rec }

func (c *Cache) Close(ctx context.Context) error {
	return c.provider.Close(ctx)
}

// Store writes value under a fresh UUID key and returns the key.
// Accepted kinds: string, []byte, integers, floats, bool, encoding.BinaryMarshaler;
// anything else fails with ErrUnsupportedValue. Store errors are not retried.
func (c *Cache) Store(ctx context.Context, value any) (string, error) {
	b, err := scalar.Encode(value)
	if err != nil {
		return "", err
	}
	return c.storeRaw(ctx, b)
}

// StoreWith encodes v with encode (usually a Codec's Encode) and stores the bytes.
func StoreWith[V any](ctx context.Context, c *Cache, v V, encode func(V) ([]byte, error)) (string, error) {
	b, err := encode(v)
	if err != nil {
		return "", err
	}
	return c.storeRaw(ctx, b)
}

func (c *Cache) storeRaw(ctx context.Context, b []byte) (string, error) {
	key := c.newKey()
	ok, err := c.provider.Set(ctx, key, b, c.computeSetCost(key, b), c.ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		c.hooks.ProviderSetRejected(key)
		c.log.Debug("Store rejected by provider (pressure)", Fields{"key": key})
		return "", ErrRejected
	}
	c.hooks.Stored(key, len(b))
	return key, nil
}

// Get returns the raw bytes under key. A missing key is (nil, false, nil), never an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, ok, err := c.provider.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		c.hooks.Miss(key)
		return nil, false, nil
	}
	return b, true, nil
}

// GetWith reads key and applies fn to the raw bytes. On a miss fn is not called and
// the result is (zero, false, nil). A failing fn surfaces as *DecodeError.
// A nil fn is an error for any T other than []byte; use Cache.Get for raw reads.
func GetWith[T any](ctx context.Context, c *Cache, key string, fn DecodeFunc[T]) (T, bool, error) {
	var zero T
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if fn == nil {
		if v, isT := any(b).(T); isT {
			return v, true, nil
		}
		return zero, false, &DecodeError{Key: key, Err: errNilDecode}
	}
	v, err := fn(b)
	if err != nil {
		c.hooks.DecodeFailed(key, err)
		return zero, false, &DecodeError{Key: key, Err: err}
	}
	return v, true, nil
}

// GetStr reads key as UTF-8 text.
func (c *Cache) GetStr(ctx context.Context, key string) (string, bool, error) {
	return GetWith[string](ctx, c, key, codec.String{}.Decode)
}

// GetInt reads key as a base-10 integer.
func (c *Cache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetWith[int64](ctx, c, key, codec.Int{}.Decode)
}

// GetFloat reads key as a decimal floating point number.
func (c *Cache) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return GetWith[float64](ctx, c, key, codec.Float{}.Decode)
}

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestProvider(t *testing.T, cfg Config) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	if cfg.Client == nil {
		cfg.Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		cfg.CloseClient = true
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestNewRejectsNilClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("New(nil client) err=%v, want ErrNilClient", err)
	}
}

func TestGetSetDel(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t, Config{})

	if _, ok, err := p.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "k", []byte("v"), 1, 0); err != nil || !ok {
		t.Fatalf("Set ok=%v err=%v", ok, err)
	}
	b, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || string(b) != "v" {
		t.Fatalf("Get = %q ok=%v err=%v", b, ok, err)
	}
	if ttl := mr.TTL("k"); ttl != 0 {
		t.Fatalf("ttl<=0 should not expire, got %v", ttl)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if mr.Exists("k") {
		t.Fatalf("Del did not remove key")
	}
}

func TestSetWithTTL(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t, Config{})

	if _, err := p.Set(ctx, "k", []byte("v"), 1, time.Minute); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expected key to expire")
	}
}

func TestFlushClearsEverything(t *testing.T) {
	for _, async := range []bool{false, true} {
		ctx := context.Background()
		p, mr := newTestProvider(t, Config{FlushAsync: async})

		_ = mr.Set("foreign", "x") // written by someone else
		if _, err := p.Set(ctx, "k", []byte("v"), 1, 0); err != nil {
			t.Fatal(err)
		}
		if _, err := p.Incr(ctx, "counter"); err != nil {
			t.Fatal(err)
		}

		if err := p.Flush(ctx); err != nil {
			t.Fatalf("Flush(async=%v): %v", async, err)
		}
		if keys := mr.Keys(); len(keys) != 0 {
			t.Fatalf("Flush(async=%v) left keys %v", async, keys)
		}
	}
}

func TestFlushConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	p, err := New(Config{Client: rdb, CloseClient: true})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close(context.Background())

	mr.Close()
	if err := p.Flush(context.Background()); err == nil {
		t.Fatalf("expected error from unreachable server")
	}
}

func TestCloseOwnership(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	p, err := New(Config{Client: rdb}) // borrowed
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Close(ctx); err != nil {
		t.Fatal(err)
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("borrowed client closed by provider: %v", err)
	}

	owned, _ := New(Config{Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), CloseClient: true})
	if err := owned.Close(ctx); err != nil {
		t.Fatal(err)
	}
	if err := owned.Close(ctx); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}

func TestRecorderSharesDatabase(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t, Config{})

	if err := p.Append(ctx, "m:outputs", "key-1"); err != nil {
		t.Fatal(err)
	}
	l, err := mr.List("m:outputs")
	if err != nil || len(l) != 1 || l[0] != "key-1" {
		t.Fatalf("list = %v, %v", l, err)
	}
}

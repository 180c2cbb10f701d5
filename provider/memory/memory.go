// Package memory is an in-process provider with per-entry TTLs. It also keeps call
// counters and logs (callstore.Local), so instrumentation works without a server.
// Intended for tests, demos and single-process use.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/unkn0wn-root/kvcache/callstore"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type Provider struct {
	*callstore.Local

	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

var (
	_ pr.Provider        = (*Provider)(nil)
	_ callstore.Recorder = (*Provider)(nil)
)

func New() *Provider {
	return &Provider{
		Local: callstore.NewLocal(),
		m:     make(map[string]entry),
		now:   time.Now,
	}
}

// Get returns a copy; callers may modify it.
func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && p.now().After(e.exp) {
		delete(p.m, key)
		return nil, false, nil
	}
	out := make([]byte, len(e.v))
	copy(out, e.v)
	return out, true, nil
}

// Set keeps its own copy of value.
func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = p.now().Add(ttl)
	}
	v := make([]byte, len(value))
	copy(v, value)

	p.mu.Lock()
	p.m[key] = entry{v: v, exp: exp}
	p.mu.Unlock()
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

// Flush drops values, counters and call logs.
func (p *Provider) Flush(_ context.Context) error {
	p.mu.Lock()
	p.m = make(map[string]entry)
	p.mu.Unlock()
	p.Local.Reset()
	return nil
}

// Len reports the number of stored values, expired ones included.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.m)
}

func (p *Provider) Close(_ context.Context) error { return nil }

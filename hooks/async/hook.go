// Package asynchook runs another kvcache.Hooks off the caller's goroutine.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{MissEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := kvcache.New(ctx, kvcache.Options{Hooks: hooks})
//
// Events that arrive while the queue is full are dropped and counted.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/kvcache"
)

type Hooks struct {
	inner   kvcache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closed  atomic.Bool
	dropped atomic.Uint64
}

var _ kvcache.Hooks = (*Hooks)(nil)

func New(inner kvcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.closed.Store(true)
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	if h.closed.Load() {
		h.dropped.Add(1)
		return
	}
	defer func() {
		// lost the race with Close
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) Flushed()               { h.try(func() { h.inner.Flushed() }) }
func (h *Hooks) Miss(k string)          { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) Stored(k string, n int) { h.try(func() { h.inner.Stored(k, n) }) }
func (h *Hooks) ProviderSetRejected(k string) {
	h.try(func() { h.inner.ProviderSetRejected(k) })
}
func (h *Hooks) DecodeFailed(k string, err error) {
	h.try(func() { h.inner.DecodeFailed(k, err) })
}
func (h *Hooks) RecorderUnavailable(m string) {
	h.try(func() { h.inner.RecorderUnavailable(m) })
}

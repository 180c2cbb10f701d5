// Package sloghooks logs cache events through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/kvcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	MissEvery   uint64
	StoredEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	missCtr   atomic.Uint64
	storedCtr atomic.Uint64
}

var _ kvcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Flushed() {
	if h.l == nil {
		return
	}
	h.l.Info("kvcache.flushed")
}

func (h *Hooks) Stored(key string, size int) {
	if h.l == nil || !sample(h.opts.StoredEvery, &h.storedCtr) {
		return
	}
	h.l.Debug("kvcache.stored",
		"key", h.redact(key),
		"size", size)
}

func (h *Hooks) Miss(key string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("kvcache.miss", "key", h.redact(key))
}

func (h *Hooks) DecodeFailed(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("kvcache.decode_failed",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) ProviderSetRejected(key string) {
	if h.l == nil {
		return
	}
	h.l.Warn("kvcache.provider_set_rejected", "key", h.redact(key))
}

func (h *Hooks) RecorderUnavailable(method string) {
	if h.l == nil {
		return
	}
	h.l.Warn("kvcache.recorder_unavailable",
		"method", method,
		"msg", "provider keeps no call records; instrumentation disabled")
}

// Package provider defines the storage abstraction used by kvcache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key. Values carry no type tag;
// whoever reads them decides how to interpret the bytes.
//
// A provider may additionally implement callstore.Recorder. kvcache records call
// counts and call history only on providers that do; on the others the
// instrumentation is silently skipped.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (<= 0 => no expiry). May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Flush removes every key the store holds, not only those written by kvcache.
	Flush(ctx context.Context) error

	// Close releases resources.
	Close(ctx context.Context) error
}

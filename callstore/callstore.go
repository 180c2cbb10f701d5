// Package callstore keeps the per-method call counters and call logs written by
// kvcache's instrumentation. Use Local for in-process bookkeeping, or Redis to keep
// them next to the cached values in the same database.
package callstore

import "context"

// Counter holds one monotonically increasing integer per name.
type Counter interface {
	// Incr atomically adds one and returns the new value.
	Incr(ctx context.Context, name string) (int64, error)
	// Count returns the current value; missing => 0.
	Count(ctx context.Context, name string) (int64, error)
}

// History holds append-only ordered lists of strings.
type History interface {
	// Append adds entry at the tail of list key.
	Append(ctx context.Context, key string, entry string) error
	// Range returns every entry of list key in insertion order; missing => empty.
	Range(ctx context.Context, key string) ([]string, error)
}

// Recorder is a store able to keep both counters and call logs.
type Recorder interface {
	Counter
	History
}

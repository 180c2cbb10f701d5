package kvcache

// Hooks lightweight callbacks for cache events.
// Implementations MUST be cheap and non-blocking; wrap slow ones in hooks/async.
type Hooks interface {
	// The store was flushed (on New).
	Flushed()

	// A value of size bytes was written under key.
	Stored(key string, size int)

	// A read found no value for key.
	Miss(key string)

	// A decode function failed on the value under key.
	DecodeFailed(key string, err error)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(key string)

	// Instrument was asked to record method but the cache has no recorder.
	RecorderUnavailable(method string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Flushed()                   {}
func (NopHooks) Stored(string, int)         {}
func (NopHooks) Miss(string)                {}
func (NopHooks) DecodeFailed(string, error) {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) RecorderUnavailable(string) {}

package kvcache

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/kvcache/internal/scalar"
)

var (
	// ErrUnsupportedValue is returned by Store for values that are not a string,
	// []byte, integer, float, bool or encoding.BinaryMarshaler.
	ErrUnsupportedValue = scalar.ErrUnsupported

	// ErrRejected means the provider refused the write (eviction pressure).
	ErrRejected = errors.New("kvcache: write rejected by provider")

	// ErrNoRecorder means the cache has no counters or call logs to read.
	ErrNoRecorder = errors.New("kvcache: provider keeps no call records")

	errNilDecode = errors.New("nil decode function")
)

// DecodeError wraps a decode function failure for the value stored under Key.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kvcache: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

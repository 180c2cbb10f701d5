package kvcache

import "github.com/google/uuid"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func defaultSetCost(string, []byte) int64 { return 1 }

// defaultKey returns a random (version 4) UUID in canonical form.
func defaultKey() string { return uuid.NewString() }

package kvcache

import (
	"time"

	"github.com/unkn0wn-root/kvcache/callstore"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

// SetCostFunc computes the cost passed to Provider.Set (only Ristretto uses it).
type SetCostFunc func(key string, raw []byte) int64

// Options configure a Cache. The zero value connects to Redis on localhost:6379.
type Options struct {
	Provider pr.Provider        // nil => Redis at localhost:6379, owned (and closed) by the Cache
	Recorder callstore.Recorder // nil => Provider itself when it implements callstore.Recorder

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	TTL            time.Duration // 0 => values never expire
	ComputeSetCost SetCostFunc   // default 1
	NewKey         func() string // default uuid.NewString
}

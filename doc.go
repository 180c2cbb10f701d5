// Package kvcache is a small facade over an external key-value store. A Cache stores
// scalar values under random UUID keys and reads them back, optionally decoding the
// raw bytes on the way out.
//
// Components:
//   - Provider: byte store with TTL (Redis by default; memory, Ristretto, BigCache).
//   - Codec[V]: bytes <-> V conversions used by the Get* helpers and StoreWith/GetWith.
//   - callstore.Recorder: per-method counters and call logs used by CountCalls and
//     CallHistory. Redis and memory providers carry one; the others do not, and the
//     instrumentation then does nothing.
//
// Construction is destructive: New flushes the whole store the provider points at,
// including keys written by other programs.
//
// Values are stored without a type tag, so the reader picks the decoding:
//
//	c, _ := kvcache.New(ctx, kvcache.Options{})
//	key, _ := c.Store(ctx, 42)
//	n, ok, _ := c.GetInt(ctx, key) // 42, true
//	s, ok, _ := c.GetStr(ctx, key) // "42", true
//
// Instrumentation:
//
//	ic := kvcache.Instrument(c)
//	_, _ = ic.Store(ctx, "foo")
//	_ = ic.Replay(ctx, os.Stdout, kvcache.StoreMethod)
//
// Keys:
//
//	<uuid>                    - stored values
//	<pkg.Type.Method>         - call counter
//	<pkg.Type.Method>:inputs  - rendered call arguments, in call order
//	<pkg.Type.Method>:outputs - rendered results, in call order
package kvcache

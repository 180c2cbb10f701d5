package callstore

import (
	"context"
	"sync"
)

// Local keeps counters and lists in-process. Safe for concurrent use.
// Entries are never pruned; call Reset to drop everything.
type Local struct {
	mu     sync.RWMutex
	counts map[string]int64
	lists  map[string][]string
}

var _ Recorder = (*Local)(nil)

func NewLocal() *Local {
	return &Local{
		counts: make(map[string]int64),
		lists:  make(map[string][]string),
	}
}

func (s *Local) Incr(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	s.counts[name]++
	n := s.counts[name]
	s.mu.Unlock()
	return n, nil
}

func (s *Local) Count(_ context.Context, name string) (int64, error) {
	s.mu.RLock()
	n := s.counts[name] // zero if missing
	s.mu.RUnlock()
	return n, nil
}

func (s *Local) Append(_ context.Context, key, entry string) error {
	s.mu.Lock()
	s.lists[key] = append(s.lists[key], entry)
	s.mu.Unlock()
	return nil
}

// Range returns a copy; callers may keep or mutate it.
func (s *Local) Range(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	l := s.lists[key]
	out := make([]string, len(l))
	copy(out, l)
	s.mu.RUnlock()
	return out, nil
}

// Reset drops all counters and lists.
func (s *Local) Reset() {
	s.mu.Lock()
	s.counts = make(map[string]int64)
	s.lists = make(map[string][]string)
	s.mu.Unlock()
}

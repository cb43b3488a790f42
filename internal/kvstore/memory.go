package kvstore

import (
	"fmt"
	"sync"

	"muchong-engine/internal/domain"
)

// Memory is an in-process Store with the same budget semantics as the
// sqlite backend. Used in tests and as a fallback when no data dir is
// writable.
type Memory struct {
	mu       sync.Mutex
	m        map[string]string
	maxBytes int64
}

func NewMemory(maxBytes int64) *Memory {
	return &Memory{m: make(map[string]string), maxBytes: maxBytes}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string, evictable ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fits(key, value) {
		s.m[key] = value
		return nil
	}
	for _, k := range evictable {
		delete(s.m, k)
	}
	if !s.fits(key, value) {
		return fmt.Errorf("kv set %q after eviction: %w", key, domain.ErrQuotaExceeded)
	}
	s.m[key] = value
	return nil
}

func (s *Memory) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

func (s *Memory) fits(key, value string) bool {
	if s.maxBytes <= 0 {
		return true
	}
	var used int64
	for k, v := range s.m {
		if k == key {
			continue
		}
		used += int64(len(v))
	}
	return used+int64(len(value)) <= s.maxBytes
}

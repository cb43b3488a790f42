// Package favorites persists the set of user-marked posting ids. Losing
// favorites is lower severity than blocking the UI, so every read failure
// degrades to an empty set.
package favorites

import (
	"encoding/json"
	"log"
	"sync"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/kvstore"
)

const storageKey = "muchong_favorites"

type Store struct {
	mu    sync.Mutex
	store kvstore.Store
}

func New(store kvstore.Store) *Store {
	return &Store{store: store}
}

func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.ids() {
		if fav == id {
			return true
		}
	}
	return false
}

// Add is idempotent; inserting a present id leaves the set unchanged.
func (s *Store) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.ids()
	for _, fav := range ids {
		if fav == id {
			return
		}
	}
	s.persist(append(ids, id))
}

// Remove is idempotent; removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.ids()
	kept := ids[:0]
	for _, fav := range ids {
		if fav != id {
			kept = append(kept, fav)
		}
	}
	s.persist(kept)
}

// Toggle flips membership and returns the new state. This is the only
// mutator the UI layer calls.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.ids()
	for i, fav := range ids {
		if fav == id {
			s.persist(append(ids[:i], ids[i+1:]...))
			return false
		}
	}
	s.persist(append(ids, id))
	return true
}

// IDs returns the current membership as a set.
func (s *Store) IDs() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[string]bool)
	for _, id := range s.ids() {
		set[id] = true
	}
	return set
}

// Select projects the favorites set against a dataset, preserving the
// dataset's order rather than the storage order.
func (s *Store) Select(items []domain.RecruitmentItem) []domain.RecruitmentItem {
	set := s.IDs()
	var out []domain.RecruitmentItem
	for _, it := range items {
		if set[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// ids reads the persisted list; callers hold s.mu.
func (s *Store) ids() []string {
	raw, ok := s.store.Get(storageKey)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("level=warn msg=\"favorites payload malformed, resetting\" err=%v", err)
		return nil
	}
	return ids
}

func (s *Store) persist(ids []string) {
	b, err := json.Marshal(ids)
	if err != nil {
		log.Printf("level=warn msg=\"favorites encode failed\" err=%v", err)
		return
	}
	// Fail-open: the in-memory answer this call already gave stays valid
	// for the session even if the write is lost.
	if err := s.store.Set(storageKey, string(b)); err != nil {
		log.Printf("level=warn msg=\"favorites persist failed\" err=%v", err)
	}
}

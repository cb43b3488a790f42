// Package theme persists the UI theme preference. Until the user picks a
// theme explicitly, the OS/system preference is followed live; once any
// explicit preference is persisted it always wins.
package theme

import (
	"log"
	"sync"

	"muchong-engine/internal/kvstore"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const storageKey = "muchong_theme"

// ProbeFunc reports the system color-scheme preference, or "" when the
// host shell provides none.
type ProbeFunc func() Theme

type Store struct {
	mu      sync.Mutex
	store   kvstore.Store
	probe   ProbeFunc
	current Theme
}

// New resolves the startup theme: persisted preference, then system probe,
// then light.
func New(store kvstore.Store, probe ProbeFunc) *Store {
	s := &Store{store: store, probe: probe}
	s.current = s.resolve()
	return s
}

func (s *Store) resolve() Theme {
	if raw, ok := s.store.Get(storageKey); ok {
		if t := Theme(raw); t == Light || t == Dark {
			return t
		}
		log.Printf("level=warn msg=\"persisted theme invalid, ignoring\" value=%q", raw)
	}
	if s.probe != nil {
		if t := s.probe(); t == Light || t == Dark {
			return t
		}
	}
	return Light
}

func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Toggle flips the theme and persists it as the explicit preference. From
// here on system preference changes are ignored for this installation.
func (s *Store) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == Dark {
		s.current = Light
	} else {
		s.current = Dark
	}
	if err := s.store.Set(storageKey, string(s.current)); err != nil {
		log.Printf("level=warn msg=\"theme persist failed\" err=%v", err)
	}
	return s.current
}

// SystemChanged feeds a system preference change into the store. The
// persisted-preference check happens here, at change time, so a toggle
// that landed after subscription still suppresses the update.
func (s *Store) SystemChanged(t Theme) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != Light && t != Dark {
		return s.current
	}
	if _, ok := s.store.Get(storageKey); ok {
		return s.current // explicit preference exists; subscription is a no-op
	}
	s.current = t
	return s.current
}

// Package view owns the live query state behind the list UI: the committed
// query parameters plus the debounce and transition machinery around them.
// One session serves one UI shell; all mutation goes through the setters.
package view

import (
	"sync"
	"time"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/events"
	"muchong-engine/internal/sched"
)

type Config struct {
	Debounce   time.Duration // search quiescence window
	Settle     time.Duration // busy-clear delay after a commit
	Transition time.Duration // page-change smoothing flag
	PageSizes  []int         // recognized page sizes
}

func DefaultConfig() Config {
	return Config{
		Debounce:   300 * time.Millisecond,
		Settle:     100 * time.Millisecond,
		Transition: 200 * time.Millisecond,
		PageSizes:  []int{6, 12, 24, 48},
	}
}

// State is what the UI polls or receives alongside events.
type State struct {
	Params        domain.QueryParams `json:"params"`
	Busy          bool               `json:"busy"`
	Transitioning bool               `json:"transitioning"`
}

type Session struct {
	mu     sync.Mutex
	params domain.QueryParams

	search     *sched.Debouncer
	transition *sched.Transient
	hub        *events.Hub
	pageSizes  []int
}

func NewSession(cfg Config, hub *events.Hub) *Session {
	if len(cfg.PageSizes) == 0 {
		cfg.PageSizes = DefaultConfig().PageSizes
	}
	s := &Session{
		params:     domain.DefaultQueryParams(),
		transition: sched.NewTransient(cfg.Transition),
		hub:        hub,
		pageSizes:  cfg.PageSizes,
	}
	s.params.PageSize = cfg.PageSizes[0]
	s.search = sched.NewDebouncer(cfg.Debounce, cfg.Settle, s.commitSearch)
	return s
}

// SetSearch feeds a keystroke into the debouncer. The term is committed
// only after the quiescence window passes with no newer keystroke.
func (s *Session) SetSearch(term string) {
	s.search.Trigger(term)
}

func (s *Session) commitSearch(term string) {
	s.mu.Lock()
	s.params.SearchTerm = term
	s.params.Page = 1
	s.mu.Unlock()
	s.hub.Publish(events.MakeEvent("", events.TypeSearchCommitted, 1, map[string]any{"term": term}))
}

func (s *Session) SetTag(tag string) {
	s.mu.Lock()
	s.params.TagFilter = tag
	s.params.Page = 1
	s.mu.Unlock()
}

func (s *Session) SetSchool(school string) {
	s.mu.Lock()
	s.params.SchoolFilter = school
	s.params.Page = 1
	s.mu.Unlock()
}

func (s *Session) SetFavoritesOnly(on bool) {
	s.mu.Lock()
	s.params.FavoritesOnly = on
	s.params.Page = 1
	s.mu.Unlock()
}

// SetSort repeats the list header behavior: picking the current field flips
// the order, picking a new field starts it descending.
func (s *Session) SetSort(field domain.SortField) {
	if !field.Valid() {
		return
	}
	s.mu.Lock()
	if s.params.SortField == field {
		if s.params.SortOrder == domain.SortAsc {
			s.params.SortOrder = domain.SortDesc
		} else {
			s.params.SortOrder = domain.SortAsc
		}
	} else {
		s.params.SortField = field
		s.params.SortOrder = domain.SortDesc
	}
	s.params.Page = 1
	s.mu.Unlock()
}

func (s *Session) SetPage(page int) {
	if page < 1 {
		return
	}
	s.mu.Lock()
	s.params.Page = page
	s.mu.Unlock()
	s.transition.Raise()
	s.hub.Publish(events.MakeEvent("", events.TypePageTransition, 1, map[string]any{"page": page}))
}

// SetPageSize accepts only the recognized sizes and resets to page 1.
func (s *Session) SetPageSize(size int) {
	ok := false
	for _, n := range s.pageSizes {
		if n == size {
			ok = true
			break
		}
	}
	if !ok {
		return
	}
	s.mu.Lock()
	s.params.PageSize = size
	s.params.Page = 1
	s.mu.Unlock()
}

// Reset cancels pending timers and returns every parameter to its default.
func (s *Session) Reset() {
	s.search.Cancel()
	s.mu.Lock()
	def := domain.DefaultQueryParams()
	def.PageSize = s.pageSizes[0]
	s.params = def
	s.mu.Unlock()
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	p := s.params
	s.mu.Unlock()
	return State{
		Params:        p,
		Busy:          s.search.Busy(),
		Transitioning: s.transition.Active(),
	}
}

// Close cancels all pending scheduled work. Safe to call more than once.
func (s *Session) Close() {
	s.search.Close()
	s.transition.Close()
}

// Package cache is the time-boxed, whole-dataset snapshot layered over the
// key-value store. There is exactly one entry; per-query caching does not
// exist.
package cache

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/kvstore"
)

const (
	dataKey      = "muchong_recruitment_data"
	timestampKey = "muchong_recruitment_timestamp"
)

// DefaultTTL matches the 24h window the web client used.
const DefaultTTL = 24 * time.Hour

type Cache struct {
	store kvstore.Store
	ttl   time.Duration
	now   func() time.Time
}

func New(store kvstore.Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

// NewWithClock injects the clock for expiry tests.
func NewWithClock(store kvstore.Store, ttl time.Duration, now func() time.Time) *Cache {
	c := New(store, ttl)
	c.now = now
	return c
}

// Read returns the cached dataset and its stored-at time. A stale or
// malformed entry is evicted before the miss is reported, so a second read
// never sees it.
func (c *Cache) Read() (items []domain.RecruitmentItem, storedAt time.Time, ok bool) {
	raw, haveData := c.store.Get(dataKey)
	tsRaw, haveTS := c.store.Get(timestampKey)
	if !haveData || !haveTS {
		return nil, time.Time{}, false
	}

	ms, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		log.Printf("level=warn msg=\"cache timestamp malformed\" value=%q", tsRaw)
		c.Clear()
		return nil, time.Time{}, false
	}
	storedAt = time.UnixMilli(ms)

	if c.now().Sub(storedAt) > c.ttl {
		c.Clear()
		return nil, time.Time{}, false
	}

	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("level=warn msg=\"cache payload malformed\" err=%v", err)
		c.Clear()
		return nil, time.Time{}, false
	}
	return items, storedAt, true
}

// Write replaces the cached dataset unconditionally. Both cache keys are
// fair game for eviction if the store is over budget.
func (c *Cache) Write(items []domain.RecruitmentItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}
	if err := c.store.Set(dataKey, string(b), dataKey, timestampKey); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.store.Set(timestampKey, ts, dataKey, timestampKey); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	return nil
}

// Clear removes the entry regardless of expiry state.
func (c *Cache) Clear() {
	c.store.Delete(dataKey)
	c.store.Delete(timestampKey)
}

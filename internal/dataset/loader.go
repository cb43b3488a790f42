// Package dataset owns the embedded recruitment snapshot and the
// cache-or-source resolution around it. The "source" is bundled at build
// time; refresh re-reads it, no network is involved.
package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"muchong-engine/internal/cache"
	"muchong-engine/internal/domain"
)

//go:embed source.json
var sourceJSON []byte

// Snapshot is what a load produces: the dataset plus provenance.
type Snapshot struct {
	Items     []domain.RecruitmentItem `json:"items"`
	FromCache bool                     `json:"fromCache"`
	Timestamp time.Time                `json:"timestamp"`
}

type Loader struct {
	cache *cache.Cache
	sf    singleflight.Group
	now   func() time.Time
}

func NewLoader(c *cache.Cache) *Loader {
	return &Loader{cache: c, now: time.Now}
}

// Load resolves cache-first: a fresh cache entry is returned as-is with its
// stored-at time; otherwise the embedded source is decoded, cached, and
// returned with the current time.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	v, err, _ := l.sf.Do("load", func() (any, error) {
		if items, storedAt, ok := l.cache.Read(); ok {
			return Snapshot{Items: items, FromCache: true, Timestamp: storedAt}, nil
		}
		return l.fromSource()
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), ctx.Err()
}

// Refresh bypasses the cache read and overwrites the cache with a fresh
// decode of the source. This is the only way previously cached data goes
// stale.
func (l *Loader) Refresh(ctx context.Context) (Snapshot, error) {
	v, err, _ := l.sf.Do("refresh", func() (any, error) {
		return l.fromSource()
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), ctx.Err()
}

func (l *Loader) fromSource() (Snapshot, error) {
	items, err := decodeSource()
	if err != nil {
		return Snapshot{}, err
	}
	// Cache failure is fail-open; the caller still gets the data.
	if err := l.cache.Write(items); err != nil {
		log.Printf("level=warn msg=\"dataset cache write failed\" err=%v", err)
	}
	return Snapshot{Items: items, FromCache: false, Timestamp: l.now()}, nil
}

func decodeSource() ([]domain.RecruitmentItem, error) {
	var items []domain.RecruitmentItem
	if err := json.Unmarshal(sourceJSON, &items); err != nil {
		return nil, fmt.Errorf("%w: decode embedded source: %v", domain.ErrDataLoad, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: embedded source is empty", domain.ErrDataLoad)
	}
	return items, nil
}

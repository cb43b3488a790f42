package httpapi

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"muchong-engine/internal/config"
	"muchong-engine/internal/dataset"
	"muchong-engine/internal/events"
	"muchong-engine/internal/favorites"
	"muchong-engine/internal/theme"
	"muchong-engine/internal/view"
)

type Deps struct {
	// Snapshot holds the current dataset.Snapshot; refresh swaps it.
	Snapshot *atomic.Value

	Loader    *dataset.Loader
	Favorites *favorites.Store
	Theme     *theme.Store
	Session   *view.Session
	Hub       *events.Hub

	// RefreshLimit throttles UI-driven refresh storms.
	RefreshLimit *rate.Limiter

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Export
	ExportDir    string
	ExportPrefix string
}

func (d Deps) snapshot() dataset.Snapshot {
	if v, ok := d.Snapshot.Load().(dataset.Snapshot); ok {
		return v
	}
	return dataset.Snapshot{}
}

package httpapi

import (
	"net/http"

	"muchong-engine/internal/events"
)

type RefreshHandler struct {
	Deps Deps
}

// Run re-reads the bundled source, overwrites the cache, and swaps the
// in-memory dataset. Rate-limited so a stuck refresh button cannot hammer
// cache writes.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.Deps.RefreshLimit != nil && !h.Deps.RefreshLimit.Allow() {
		WriteError(w, r, http.StatusTooManyRequests, "refresh_throttled", "refresh requested too often")
		return
	}

	snap, err := h.Deps.Loader.Refresh(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "data_load_failed", err.Error())
		return
	}
	h.Deps.Snapshot.Store(snap)

	reqID := RequestIDFrom(r.Context())
	h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypeDatasetRefreshed, 1,
		map[string]any{"count": len(snap.Items), "timestamp": snap.Timestamp.UnixMilli()}))

	writeJSON(w, map[string]any{
		"count":     len(snap.Items),
		"timestamp": snap.Timestamp.UnixMilli(),
	})
}

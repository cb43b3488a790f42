package httpapi

import (
	"net/http"
	"strings"

	"muchong-engine/internal/events"
)

type FavoritesHandler struct {
	Deps Deps
}

// List returns the favorited items in dataset order.
func (h FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Deps.Favorites.Select(h.Deps.snapshot().Items)
	writeJSON(w, map[string]any{"items": items, "count": len(items)})
}

// ToggleByPath flips membership for /favorites/{id}/toggle and returns the
// new state.
func (h FavoritesHandler) ToggleByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/favorites/"), "/toggle")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid item id")
		return
	}

	favorited := h.Deps.Favorites.Toggle(id)

	reqID := RequestIDFrom(r.Context())
	h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypeFavoriteToggled, 1,
		map[string]any{"id": id, "favorited": favorited}))
	writeJSON(w, map[string]any{"id": id, "favorited": favorited})
}

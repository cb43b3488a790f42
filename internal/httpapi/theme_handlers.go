package httpapi

import (
	"encoding/json"
	"net/http"

	"muchong-engine/internal/events"
	"muchong-engine/internal/theme"
)

type ThemeHandler struct {
	Deps Deps
}

func (h ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"theme": h.Deps.Theme.Current()})
}

// Toggle flips the theme; from now on the explicit preference wins over
// system changes.
func (h ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	t := h.Deps.Theme.Toggle()

	reqID := RequestIDFrom(r.Context())
	h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypeThemeChanged, 1, map[string]any{"theme": t}))
	writeJSON(w, map[string]any{"theme": t})
}

// System lets the hosting shell report an OS color-scheme change. It only
// takes effect while no explicit preference has ever been persisted.
func (h ThemeHandler) System(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	before := h.Deps.Theme.Current()
	after := h.Deps.Theme.SystemChanged(theme.Theme(body.Theme))
	if after != before {
		reqID := RequestIDFrom(r.Context())
		h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypeThemeChanged, 1, map[string]any{"theme": after}))
	}
	writeJSON(w, map[string]any{"theme": after})
}

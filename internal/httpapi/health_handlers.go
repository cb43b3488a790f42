package httpapi

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	Deps Deps
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.Deps.snapshot()
	writeJSON(w, map[string]any{
		"ok":        true,
		"time":      time.Now().Format(time.RFC3339),
		"items":     len(snap.Items),
		"fromCache": snap.FromCache,
	})
}

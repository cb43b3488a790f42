package httpapi

import "net/http"

// NewMux wires every handler; main() wraps the result in the middleware
// chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{Deps: d}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Items + aggregates
	ih := ItemsHandler{Deps: d}
	mux.HandleFunc("/items", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.List,
	}))
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.Stats,
	}))

	// Refresh (bypasses cache, overwrites it)
	rh := RefreshHandler{Deps: d}
	mux.HandleFunc("/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	// Favorites
	fh := FavoritesHandler{Deps: d}
	mux.HandleFunc("/favorites", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.List,
	}))
	mux.HandleFunc("/favorites/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.ToggleByPath, // expects /favorites/{id}/toggle
	}))

	// Theme
	th := ThemeHandler{Deps: d}
	mux.HandleFunc("/theme", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.Get,
	}))
	mux.HandleFunc("/theme/toggle", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: th.Toggle,
	}))
	mux.HandleFunc("/theme/system", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: th.System,
	}))

	// Export (current filtered set, never just the page)
	eh := ExportHandler{Deps: d}
	mux.HandleFunc("/export/csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.CSV,
	}))
	mux.HandleFunc("/export/json", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.JSON,
	}))
	mux.HandleFunc("/export/files", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Files,
	}))

	// View session
	vh := ViewHandler{Deps: d}
	mux.HandleFunc("/view", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:   vh.Get,
		http.MethodPatch: vh.Patch,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	sh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.ServeSSE,
	}))

	return mux
}

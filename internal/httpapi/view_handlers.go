package httpapi

import (
	"encoding/json"
	"net/http"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/query"
)

type ViewHandler struct {
	Deps Deps
}

// Get returns the live session state plus the page it currently selects.
func (h ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := h.Deps.Session.Snapshot()
	snap := h.Deps.snapshot()

	filtered := query.FilterSort(snap.Items, st.Params, h.Deps.Favorites.IDs())
	page := query.Paginate(filtered, st.Params.Page, st.Params.PageSize)

	writeJSON(w, map[string]any{
		"state": st,
		"items": page,
		"total": len(filtered),
	})
}

// viewPatch carries partial updates; pointers distinguish "absent" from
// zero values.
type viewPatch struct {
	Search        *string `json:"search"`
	Tag           *string `json:"tag"`
	School        *string `json:"school"`
	FavoritesOnly *bool   `json:"favoritesOnly"`
	Sort          *string `json:"sort"`
	Page          *int    `json:"page"`
	PageSize      *int    `json:"pageSize"`
	Reset         bool    `json:"reset"`
}

// Patch applies UI input to the session. Search goes through the debouncer,
// page changes raise the transition flag; everything else applies at once.
func (h ViewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var p viewPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	s := h.Deps.Session
	if p.Reset {
		s.Reset()
	}
	if p.Search != nil {
		s.SetSearch(*p.Search)
	}
	if p.Tag != nil {
		s.SetTag(*p.Tag)
	}
	if p.School != nil {
		s.SetSchool(*p.School)
	}
	if p.FavoritesOnly != nil {
		s.SetFavoritesOnly(*p.FavoritesOnly)
	}
	if p.Sort != nil {
		s.SetSort(domain.SortField(*p.Sort))
	}
	if p.PageSize != nil {
		s.SetPageSize(*p.PageSize)
	}
	if p.Page != nil {
		s.SetPage(*p.Page)
	}

	writeJSON(w, s.Snapshot())
}

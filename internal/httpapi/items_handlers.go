package httpapi

import (
	"net/http"
	"strconv"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/query"
)

type ItemsHandler struct {
	Deps Deps
}

// List runs the full pipeline over the current dataset with the params
// given in the URL, returning one page plus the pre-pagination count.
func (h ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	p := paramsFromURL(r)
	snap := h.Deps.snapshot()

	filtered := query.FilterSort(snap.Items, p, h.Deps.Favorites.IDs())
	page := query.Paginate(filtered, p.Page, p.PageSize)

	writeJSON(w, map[string]any{
		"items":     page,
		"total":     len(filtered),
		"params":    p,
		"fromCache": snap.FromCache,
		"timestamp": snap.Timestamp.UnixMilli(),
	})
}

// Stats returns the aggregates over valid items only; they ignore every
// filter and the current page.
func (h ItemsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, query.Aggregate(h.Deps.snapshot().Items))
}

func paramsFromURL(r *http.Request) domain.QueryParams {
	q := r.URL.Query()
	p := domain.DefaultQueryParams()

	p.SearchTerm = q.Get("search")
	if v := q.Get("tag"); v != "" {
		p.TagFilter = v
	}
	if v := q.Get("school"); v != "" {
		p.SchoolFilter = v
	}
	p.FavoritesOnly = q.Get("favorites") == "true" || q.Get("favorites") == "1"
	if f := domain.SortField(q.Get("sort")); f.Valid() {
		p.SortField = f
	}
	if o := domain.SortOrder(q.Get("order")); o.Valid() {
		p.SortOrder = o
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil && n >= 1 {
		p.PageSize = n
	}
	return p
}

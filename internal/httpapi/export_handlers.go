package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"muchong-engine/internal/domain"
	"muchong-engine/internal/export"
	"muchong-engine/internal/query"
)

type ExportHandler struct {
	Deps Deps
}

// CSV streams the currently filtered set (pre-pagination, never just the
// visible page) as a BOM-prefixed CSV download.
func (h ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	items := h.filtered(r)
	name := export.Filename(h.Deps.ExportPrefix, "csv", time.Now())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := export.WriteCSV(w, items); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
	}
}

// JSON streams the same set with full fidelity.
func (h ExportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	items := h.filtered(r)
	name := export.Filename(h.Deps.ExportPrefix, "json", time.Now())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := export.WriteJSON(w, items); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
	}
}

// Files writes both dated artifacts into the export dir and reports their
// paths.
func (h ExportHandler) Files(w http.ResponseWriter, r *http.Request) {
	items := h.filtered(r)

	csvPath, jsonPath, err := export.WriteFiles(h.Deps.ExportDir, h.Deps.ExportPrefix, items)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"csv": csvPath, "json": jsonPath, "count": len(items)})
}

func (h ExportHandler) filtered(r *http.Request) []domain.RecruitmentItem {
	p := paramsFromURL(r)
	return query.FilterSort(h.Deps.snapshot().Items, p, h.Deps.Favorites.IDs())
}

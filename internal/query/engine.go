// Package query derives the user-facing view from the in-memory dataset.
// Every function is pure over (dataset, params); any input change re-runs
// the whole pipeline, which is fine at the dataset sizes involved.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"muchong-engine/internal/domain"
)

// Run executes the full pipeline: validity filter, favorites intersect,
// tag/school exact match, substring search, stable sort, pagination.
// Stage order matters: sort must see the post-filter set and pagination
// the post-sort set.
func Run(items []domain.RecruitmentItem, p domain.QueryParams, favs map[string]bool) []domain.RecruitmentItem {
	return Paginate(FilterSort(items, p, favs), p.Page, p.PageSize)
}

// FilterSort is the pipeline minus pagination. Export operates on this set:
// "what you're looking at after filtering", never just the current page.
func FilterSort(items []domain.RecruitmentItem, p domain.QueryParams, favs map[string]bool) []domain.RecruitmentItem {
	filtered := make([]domain.RecruitmentItem, 0, len(items))
	for _, it := range items {
		if !it.OK {
			continue
		}
		if p.FavoritesOnly && !favs[it.ID] {
			continue
		}
		if p.TagFilter != domain.FilterAll && it.Tag != p.TagFilter {
			continue
		}
		if p.SchoolFilter != domain.FilterAll && it.Detail.ForumMix.School != p.SchoolFilter {
			continue
		}
		filtered = append(filtered, it)
	}

	if term := strings.ToLower(p.SearchTerm); term != "" {
		matched := filtered[:0]
		for _, it := range filtered {
			if strings.Contains(strings.ToLower(it.Title), term) ||
				strings.Contains(strings.ToLower(it.Detail.ForumMix.School), term) ||
				strings.Contains(strings.ToLower(it.Detail.ForumMix.Major), term) {
				matched = append(matched, it)
			}
		}
		filtered = matched
	}

	sortItems(filtered, p.SortField, p.SortOrder)
	return filtered
}

// Paginate slices out one page. A page past the end is an empty page, not
// an error; clamping is the caller's concern.
func Paginate(items []domain.RecruitmentItem, page, pageSize int) []domain.RecruitmentItem {
	if page < 1 || pageSize < 1 {
		return []domain.RecruitmentItem{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []domain.RecruitmentItem{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// sortItems sorts in place. String fields collate per zh-CN, matching the
// dataset's dominant language; ties fall back to id ascending so equal
// keys order identically on every run.
func sortItems(items []domain.RecruitmentItem, field domain.SortField, order domain.SortOrder) {
	var coll *collate.Collator
	if field != domain.SortByTimestamp {
		coll = collate.New(language.Chinese)
	}

	key := func(it domain.RecruitmentItem) string {
		switch field {
		case domain.SortBySchool:
			return it.Detail.ForumMix.School
		case domain.SortByMajor:
			return it.Detail.ForumMix.Major
		default:
			return it.Title
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		var cmp int
		if field == domain.SortByTimestamp {
			switch {
			case a.Timestamp < b.Timestamp:
				cmp = -1
			case a.Timestamp > b.Timestamp:
				cmp = 1
			}
		} else {
			cmp = coll.CompareString(key(a), key(b))
		}

		if cmp == 0 {
			return a.ID < b.ID
		}
		if order == domain.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

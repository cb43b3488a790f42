package query

import (
	"sort"

	"muchong-engine/internal/domain"
)

// Stats are the derived aggregates shown above the list. They depend only
// on the valid (ok=true) subset and never on search, filters, or paging.
type Stats struct {
	Total       int            `json:"total"`
	SchoolCount int            `json:"schoolCount"`
	ByTag       map[string]int `json:"byTag"`

	// Filter option lists for the UI selectors.
	Tags    []string `json:"tags"`
	Schools []string `json:"schools"`
}

func Aggregate(items []domain.RecruitmentItem) Stats {
	s := Stats{ByTag: make(map[string]int)}
	schools := make(map[string]bool)

	for _, it := range items {
		if !it.OK {
			continue
		}
		s.Total++
		if _, seen := s.ByTag[it.Tag]; !seen {
			s.Tags = append(s.Tags, it.Tag)
		}
		s.ByTag[it.Tag]++
		if sch := it.Detail.ForumMix.School; sch != "" && !schools[sch] {
			schools[sch] = true
			s.Schools = append(s.Schools, sch)
		}
	}

	s.SchoolCount = len(s.Schools)
	sort.Strings(s.Schools)
	return s
}

package domain

type SortField string

const (
	SortByTimestamp SortField = "timestamp"
	SortBySchool    SortField = "school"
	SortByMajor     SortField = "major"
	SortByTitle     SortField = "title"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterAll is the sentinel selector value meaning "no filtering".
const FilterAll = "all"

// QueryParams is the full set of user-controlled inputs that determine the
// current view.
type QueryParams struct {
	SearchTerm    string    `json:"searchTerm"`
	TagFilter     string    `json:"tagFilter"`
	SchoolFilter  string    `json:"schoolFilter"`
	FavoritesOnly bool      `json:"favoritesOnly"`
	SortField     SortField `json:"sortField"`
	SortOrder     SortOrder `json:"sortOrder"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
}

// DefaultQueryParams mirrors the initial UI state: newest first, page 1,
// smallest page size, no filters.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		TagFilter:    FilterAll,
		SchoolFilter: FilterAll,
		SortField:    SortByTimestamp,
		SortOrder:    SortDesc,
		Page:         1,
		PageSize:     6,
	}
}

func (f SortField) Valid() bool {
	switch f {
	case SortByTimestamp, SortBySchool, SortByMajor, SortByTitle:
		return true
	}
	return false
}

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

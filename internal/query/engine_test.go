package query

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muchong-engine/internal/domain"
)

func item(id, tag, title, school, major string, ts int64, ok bool) domain.RecruitmentItem {
	it := domain.RecruitmentItem{
		ID: id, Tag: tag, Title: title, Timestamp: ts, OK: ok,
	}
	it.Detail.ForumMix.School = school
	it.Detail.ForumMix.Major = major
	return it
}

func defaults() domain.QueryParams {
	return domain.DefaultQueryParams()
}

func TestInvalidItemsNeverSurface(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "A", "清华大学", "物理", 1, true),
		item("b", "博士招生", "B", "清华大学", "物理", 2, false),
	}

	p := defaults()
	p.PageSize = 48
	got := Run(items, p, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	stats := Aggregate(items)
	assert.Equal(t, 1, stats.Total)
}

func TestTenItemsSixValidPagination(t *testing.T) {
	// 10 items, 6 valid, pageSize 6: page 1 has all 6, page 2 is empty.
	var items []domain.RecruitmentItem
	for i := 0; i < 10; i++ {
		items = append(items, item(
			"id-"+strconv.Itoa(i), "硕士招生", "标题", "某大学", "某专业",
			int64(i), i < 6,
		))
	}

	p := defaults()
	p.PageSize = 6

	p.Page = 1
	assert.Len(t, Run(items, p, nil), 6)

	p.Page = 2
	assert.Len(t, Run(items, p, nil), 0)
}

func TestTimestampSortBothOrders(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "X", "", "", 100, true),
		item("b", "硕士招生", "Y", "", "", 200, true),
	}

	p := defaults()
	p.SortField = domain.SortByTimestamp

	p.SortOrder = domain.SortDesc
	got := Run(items, p, nil)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b", "a"}, []string{got[0].ID, got[1].ID})

	p.SortOrder = domain.SortAsc
	got = Run(items, p, nil)
	assert.Equal(t, []string{"a", "b"}, []string{got[0].ID, got[1].ID})
}

func TestEqualKeysFallBackToID(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("z", "博士招生", "同名", "", "", 50, true),
		item("a", "博士招生", "同名", "", "", 50, true),
		item("m", "博士招生", "同名", "", "", 50, true),
	}

	p := defaults()
	for _, order := range []domain.SortOrder{domain.SortAsc, domain.SortDesc} {
		p.SortOrder = order
		got := Run(items, p, nil)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"a", "m", "z"},
			[]string{got[0].ID, got[1].ID, got[2].ID},
			"ties break on id ascending regardless of sort order")
	}
}

func TestTagAndSchoolFilters(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "A", "清华大学", "物理", 1, true),
		item("b", "硕士招生", "B", "北京大学", "化学", 2, true),
		item("c", "硕士招生", "C", "清华大学", "数学", 3, true),
	}

	p := defaults()
	p.TagFilter = "硕士招生"
	got := FilterSort(items, p, nil)
	require.Len(t, got, 2)

	p.SchoolFilter = "清华大学"
	got = FilterSort(items, p, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "Quantum Materials Lab", "清华大学", "物理", 1, true),
		item("b", "博士招生", "催化方向", "北京大学", "chemistry", 2, true),
		item("c", "博士招生", "无关", "无关大学", "无关", 3, true),
	}

	p := defaults()
	p.SearchTerm = "QUANTUM"
	got := FilterSort(items, p, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// major matches too
	p.SearchTerm = "Chem"
	got = FilterSort(items, p, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	// Chinese school names match as plain substrings
	p.SearchTerm = "清华"
	got = FilterSort(items, p, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFavoritesOnlyIntersection(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "A", "", "", 3, true),
		item("b", "博士招生", "B", "", "", 2, true),
		item("c", "博士招生", "C", "", "", 1, false), // invalid, favorited or not
	}
	favs := map[string]bool{"b": true, "c": true}

	p := defaults()
	p.FavoritesOnly = true
	got := FilterSort(items, p, favs)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestPaginationPartitionsExactly(t *testing.T) {
	var items []domain.RecruitmentItem
	for i := 0; i < 25; i++ {
		items = append(items, item("id-"+strconv.Itoa(i), "硕士招生", "T", "", "", int64(i), true))
	}

	p := defaults()
	filtered := FilterSort(items, p, nil)

	var rebuilt []string
	for page := 1; ; page++ {
		chunk := Paginate(filtered, page, 12)
		if len(chunk) == 0 {
			break
		}
		for _, it := range chunk {
			rebuilt = append(rebuilt, it.ID)
		}
	}

	var want []string
	for _, it := range filtered {
		want = append(want, it.ID)
	}
	assert.Equal(t, want, rebuilt, "pages concatenated must rebuild the filtered set")
}

func TestPageBeyondRangeIsEmptyNotError(t *testing.T) {
	items := []domain.RecruitmentItem{item("a", "博士招生", "A", "", "", 1, true)}
	assert.Empty(t, Paginate(items, 99, 6))
	assert.Empty(t, Paginate(items, 0, 6)) // page numbers start at 1
}

func TestPipelineIsDeterministic(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("b", "硕士招生", "乙", "兰州大学", "生态学", 100, true),
		item("a", "博士招生", "甲", "武汉大学", "水文学", 100, true),
		item("c", "硕士招生", "丙", "武汉大学", "水文学", 100, true),
	}

	p := defaults()
	p.SortField = domain.SortBySchool

	first := Run(items, p, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Run(items, p, nil))
	}
}

func TestAggregatesIgnoreFilters(t *testing.T) {
	items := []domain.RecruitmentItem{
		item("a", "博士招生", "A", "清华大学", "物理", 1, true),
		item("b", "硕士招生", "B", "北京大学", "化学", 2, true),
		item("c", "硕士招生", "C", "清华大学", "数学", 3, true),
		item("d", "硕士招生", "D", "复旦大学", "统计", 4, false),
	}

	stats := Aggregate(items)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.SchoolCount)
	assert.Equal(t, map[string]int{"博士招生": 1, "硕士招生": 2}, stats.ByTag)
	assert.ElementsMatch(t, []string{"博士招生", "硕士招生"}, stats.Tags)
	assert.ElementsMatch(t, []string{"清华大学", "北京大学"}, stats.Schools)
}

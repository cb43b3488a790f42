package domain

// ForumMix holds the structured fields extracted from a forum posting.
// Quota is numeric in some source records and free text in others, so it
// stays an opaque display string.
type ForumMix struct {
	School  string `json:"school"`
	Major   string `json:"major"`
	Grade   string `json:"grade"`
	Quota   string `json:"quota"`
	Status  string `json:"status"`
	Contact string `json:"contact"`
}

type Detail struct {
	Content  string   `json:"content"`
	ForumMix ForumMix `json:"forumMix"`
}

// RecruitmentItem is a single scraped recruitment posting. Items are
// immutable once loaded; the dataset is only ever replaced wholesale.
type RecruitmentItem struct {
	ID        string `json:"id"`
	Tag       string `json:"tag"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	URL       string `json:"url"`
	OK        bool   `json:"ok"` // false = malformed/errored scrape record, never shown
	Detail    Detail `json:"detail"`
}

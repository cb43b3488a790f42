// Package export serializes a filtered result set for download: a
// spreadsheet-friendly CSV and a full-fidelity JSON dump.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"muchong-engine/internal/domain"
)

// DefaultPrefix matches the filename the web client produced.
const DefaultPrefix = "recruitment_data"

const excerptLimit = 200

// csvHeader keeps the column set and labels of the original export so
// existing spreadsheets keep lining up.
var csvHeader = []string{
	"类型", "标题", "学校", "专业", "年级", "名额", "状态", "联系方式", "发布时间", "链接", "内容",
}

// WriteCSV writes a BOM-prefixed CSV so Excel and WPS pick up UTF-8.
// Quoting and delimiter escaping follow RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, items []domain.RecruitmentItem) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return fmt.Errorf("%w: write BOM: %v", domain.ErrExport, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: write header: %v", domain.ErrExport, err)
	}
	for _, it := range items {
		mix := it.Detail.ForumMix
		row := []string{
			it.Tag,
			it.Title,
			mix.School,
			mix.Major,
			mix.Grade,
			mix.Quota,
			mix.Status,
			mix.Contact,
			time.UnixMilli(it.Timestamp).Format("2006/01/02 15:04:05"),
			it.URL,
			Excerpt(it.Detail.Content),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: write row: %v", domain.ErrExport, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", domain.ErrExport, err)
	}
	return nil
}

// WriteJSON writes the exact item sequence, 2-space indented, no
// truncation.
func WriteJSON(w io.Writer, items []domain.RecruitmentItem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("%w: encode json: %v", domain.ErrExport, err)
	}
	return nil
}

// Excerpt strips markup and newlines from a posting body and silently cuts
// it to 200 runes.
func Excerpt(content string) string {
	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}
	text = strings.NewReplacer("\r", " ", "\n", " ").Replace(text)

	runes := []rune(text)
	if len(runes) > excerptLimit {
		runes = runes[:excerptLimit]
	}
	return string(runes)
}

// Filename builds the dated artifact name: <prefix>_<YYYY-MM-DD>.<ext>.
func Filename(prefix, ext string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02"), ext)
}

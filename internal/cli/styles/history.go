package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/omnitab/internal/domain/entity"
)

// HistoryCLIRenderer renders output for `omnitab history` and
// `omnitab bookmarks`.
type HistoryCLIRenderer struct {
	theme *Theme
}

func NewHistoryCLIRenderer(theme *Theme) *HistoryCLIRenderer {
	return &HistoryCLIRenderer{theme: theme}
}

func (r *HistoryCLIRenderer) RenderHistory(entries []entity.HistoryEntry) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("No history.")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconHistory), r.theme.Title.Render("History")))
	for _, e := range entries {
		b.WriteString(r.renderEntry(e.Title, e.URL, e.VisitCount))
		b.WriteString(" " + r.theme.TimeBadge(e.LastVisited) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *HistoryCLIRenderer) RenderBookmarks(bookmarks []entity.Bookmark) string {
	if len(bookmarks) == 0 {
		return r.theme.Subtle.Render("No bookmarks.")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconBookmark), r.theme.Title.Render("Bookmarks")))
	for _, bm := range bookmarks {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%4d ", bm.ID)))
		b.WriteString(r.renderEntry(bm.Title, bm.URL, bm.VisitCount))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *HistoryCLIRenderer) renderEntry(title, rawURL string, visits int64) string {
	if title == "" {
		title = rawURL
	}
	line := r.theme.Normal.Render(title)
	if rawURL != title {
		line += "  " + r.theme.ListItemDesc.Render(rawURL)
	}
	return line + " " + r.theme.VisitBadge(visits)
}

func (r *HistoryCLIRenderer) RenderBookmarkAdded(bm entity.Bookmark) string {
	return fmt.Sprintf("%s Bookmarked %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(bm.URL),
		r.theme.Subtle.Render(fmt.Sprintf("(#%d)", bm.ID)),
	)
}

func (r *HistoryCLIRenderer) RenderDone(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

func (r *HistoryCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

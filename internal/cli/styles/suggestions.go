package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/omnitab/internal/domain/autocomplete"
)

// SuggestionRenderer renders suggestion lists for `omnitab suggest` and the
// browse TUI.
type SuggestionRenderer struct {
	theme *Theme
}

func NewSuggestionRenderer(theme *Theme) *SuggestionRenderer {
	return &SuggestionRenderer{theme: theme}
}

func (r *SuggestionRenderer) RenderEmpty(query string) string {
	return r.theme.Subtle.Render(fmt.Sprintf("No suggestions for %q.", query))
}

// RenderList renders items, highlighting the row at selected. A negative
// selected highlights nothing.
func (r *SuggestionRenderer) RenderList(items []autocomplete.Suggestion, selected int) string {
	var b strings.Builder
	for i, s := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderOne(s, i == selected))
	}
	return b.String()
}

func (r *SuggestionRenderer) renderOne(s autocomplete.Suggestion, selected bool) string {
	t := r.theme
	cursor := "  "
	title := t.Normal.Render(s.Title)
	if selected {
		cursor = t.Highlight.Render(IconCursor) + " "
		title = t.Highlight.Render(s.Title)
	}

	line := fmt.Sprintf("%s%s %s", cursor, t.Subtle.Render(SuggestionIcon(s.Type)), title)
	if s.Subtitle != "" {
		line += "  " + t.ListItemDesc.Render(s.Subtitle)
	}
	return line + " " + t.BadgeMuted.Render(s.Type.String())
}

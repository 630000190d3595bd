package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/url"
)

const tabBarTitleMax = 18

// TabsCLIRenderer renders non-interactive output for `omnitab tabs` and
// `omnitab open`.
type TabsCLIRenderer struct {
	theme *Theme
}

func NewTabsCLIRenderer(theme *Theme) *TabsCLIRenderer {
	return &TabsCLIRenderer{theme: theme}
}

func (r *TabsCLIRenderer) RenderList(tabs []entity.Tab, maxTabs int) string {
	t := r.theme
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", t.Highlight.Render(IconTab), t.Title.Render("Tabs")))
	b.WriteString(t.Subtle.Render(fmt.Sprintf(" (%d/%d)", len(tabs), maxTabs)))
	b.WriteString("\n\n")

	for i, tab := range tabs {
		b.WriteString(r.renderOne(i, tab))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TabsCLIRenderer) renderOne(index int, tab entity.Tab) string {
	t := r.theme
	marker := t.Subtle.Render(" ")
	if tab.Active {
		marker = t.Highlight.Render("●")
	}

	line := fmt.Sprintf("%s %s %s", marker, t.Subtle.Render(fmt.Sprintf("%d", index)), t.Normal.Render(tab.DisplayTitle()))
	if tab.URL != "" && tab.URL != tab.DisplayTitle() {
		line += "  " + t.ListItemDesc.Render(tab.URL)
	}
	line += " " + t.CategoryBadge(tab.Category)
	if tab.Group != "" {
		line += " " + t.BadgeMuted.Render(tab.Group)
	}
	if tab.Incognito {
		line += " " + t.WarningStyle.Render(IconIncog)
	}
	return line
}

// RenderTabBar renders a single-line tab strip for the TUI.
func (r *TabsCLIRenderer) RenderTabBar(tabs []entity.Tab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		title := truncate(tab.DisplayTitle(), tabBarTitleMax)
		if tab.Incognito {
			title = IconIncog + " " + title
		}
		if tab.Active {
			parts = append(parts, r.theme.ActiveTab.Render(title))
		} else {
			parts = append(parts, r.theme.InactiveTab.Render(title))
		}
	}
	return strings.Join(parts, " ")
}

func (r *TabsCLIRenderer) RenderGroups(groups map[string]int) string {
	if len(groups) == 0 {
		return r.theme.Subtle.Render("No groups: every tab has a unique host.")
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%s %s\n", r.theme.Badge.Render(name), r.theme.Subtle.Render(fmt.Sprintf("%d tabs", groups[name]))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TabsCLIRenderer) RenderCategories(counts map[entity.TabCategory]int) string {
	parts := make([]string, 0, len(entity.AllCategories))
	for _, c := range entity.AllCategories {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r.theme.CategoryBadge(c), n))
		}
	}
	return strings.Join(parts, "  ")
}

func (r *TabsCLIRenderer) RenderOpened(target url.Target) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.BadgeMuted.Render(target.Kind.String()),
		r.theme.Highlight.Render(target.URL),
	)
}

func (r *TabsCLIRenderer) RenderDone(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

func (r *TabsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

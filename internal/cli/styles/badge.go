package styles

import (
	"fmt"
	"time"

	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/domain/entity"
)

// VisitBadge renders a visit count badge.
func (t *Theme) VisitBadge(count int64) string {
	text := fmt.Sprintf("%d visits", count)
	if count == 1 {
		text = "1 visit"
	}
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// CategoryBadge renders a tab category, muted for the default category.
func (t *Theme) CategoryBadge(c entity.TabCategory) string {
	if c == entity.CategoryDefault {
		return t.BadgeMuted.Render(string(c))
	}
	return t.Badge.Render(string(c))
}

// SuggestionIcon returns the icon for a suggestion type.
func SuggestionIcon(typ autocomplete.SuggestionType) string {
	switch typ {
	case autocomplete.TypeDomainCompletion, autocomplete.TypeURLLiteral:
		return IconLink
	case autocomplete.TypeSearchEngine:
		return IconSearch
	case autocomplete.TypeHistory:
		return IconHistory
	case autocomplete.TypeBookmark:
		return IconBookmark
	case autocomplete.TypeQuickAction:
		return IconBolt
	case autocomplete.TypeNewTabAction:
		return IconPlus
	default:
		return IconGlobe
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTime(time.Now(), tm)
}

func relativeTime(now, tm time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}

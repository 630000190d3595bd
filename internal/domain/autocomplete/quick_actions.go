package autocomplete

import (
	"net/url"
	"strings"
)

// QuickActions returns the keyword-triggered shortcuts for query:
// "go" opens Google, "map" opens a geo lookup, "tel" dials.
func QuickActions(query string) []Suggestion {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)
	if lower == "" {
		return nil
	}

	var actions []Suggestion
	if strings.HasPrefix(lower, "go") {
		actions = append(actions, Suggestion{
			Type:      TypeQuickAction,
			Title:     "Open Google",
			Subtitle:  "Quick action",
			TargetURL: "https://www.google.com",
		})
	}
	if strings.Contains(lower, "map") {
		actions = append(actions, Suggestion{
			Type:      TypeQuickAction,
			Title:     "Show on map: " + q,
			Subtitle:  "Quick action",
			TargetURL: "geo:0,0?q=" + url.QueryEscape(q),
		})
	}
	if strings.Contains(lower, "tel") {
		actions = append(actions, Suggestion{
			Type:      TypeQuickAction,
			Title:     "Call " + q,
			Subtitle:  "Quick action",
			TargetURL: "tel:" + url.PathEscape(q),
		})
	}
	return actions
}

// NewTabSearch offers running the search for query in a fresh tab.
func NewTabSearch(query, searchURL string) Suggestion {
	return Suggestion{
		Type:      TypeNewTabAction,
		Title:     "Search \"" + strings.TrimSpace(query) + "\" in new tab",
		Subtitle:  "New tab",
		TargetURL: searchURL,
	}
}

// Dedupe drops suggestions whose target was already seen, keeping the first.
// The new-tab action opens elsewhere, so it only collides with itself.
func Dedupe(items []Suggestion) []Suggestion {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, s := range items {
		key := s.TargetURL
		if s.Type == TypeNewTabAction {
			key = "newtab\x00" + key
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

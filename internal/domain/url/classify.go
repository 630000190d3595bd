package url

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is used whenever no usable engine template is configured.
const DefaultSearchTemplate = "https://www.google.com/search?q=%s"

// TargetKind tells whether omnibox input resolved to a page or a search.
type TargetKind int

const (
	TargetURL TargetKind = iota
	TargetSearch
)

// String returns a human-readable representation of the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetURL:
		return "url"
	case TargetSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Target is the result of classifying raw input.
type Target struct {
	Kind  TargetKind
	URL   string
	Query string
}

// Classify resolves raw input into a navigable URL. Input containing "://"
// or matching a host-like shape is a URL; everything else becomes a search
// using template. An empty template falls back to DefaultSearchTemplate.
//
// Dotted queries like "notes.txt" match the host shape and are treated as URLs.
func Classify(raw, template string) Target {
	input := strings.TrimSpace(raw)
	if LooksLikeURL(input) {
		return Target{Kind: TargetURL, URL: Normalize(input)}
	}
	return Target{
		Kind:  TargetSearch,
		URL:   BuildSearchURL(template, input),
		Query: input,
	}
}

// BuildSearchURL substitutes the escaped query into template's "%s", or
// appends it when the template has no placeholder.
func BuildSearchURL(template, query string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultSearchTemplate
	}
	escaped := url.QueryEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

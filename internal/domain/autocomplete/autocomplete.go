// Package autocomplete provides domain types and logic for omnibox suggestions.
package autocomplete

import (
	"strings"
	"unicode/utf8"
)

// SuggestionType is the closed set of suggestion kinds.
type SuggestionType int

const (
	TypeDomainCompletion SuggestionType = iota
	TypeSearchEngine
	TypeHistory
	TypeBookmark
	TypeQuickAction
	TypeNewTabAction
	TypeURLLiteral
)

// String returns a human-readable representation of the type.
func (t SuggestionType) String() string {
	switch t {
	case TypeDomainCompletion:
		return "domain"
	case TypeSearchEngine:
		return "search"
	case TypeHistory:
		return "history"
	case TypeBookmark:
		return "bookmark"
	case TypeQuickAction:
		return "action"
	case TypeNewTabAction:
		return "new-tab"
	case TypeURLLiteral:
		return "url"
	default:
		return "unknown"
	}
}

// Suggestion is an immutable omnibox entry.
type Suggestion struct {
	Type      SuggestionType `json:"type"`
	Title     string         `json:"title"`
	Subtitle  string         `json:"subtitle,omitempty"`
	TargetURL string         `json:"target_url"`
}

// ComputeCompletionSuffix returns the suffix if input is a case-insensitive prefix of fullText.
// Returns the suffix and true if input matches as a prefix, otherwise empty string and false.
// Runes are compared by case folding, so the suffix always starts on a rune
// boundary of fullText even when lowercasing would change byte lengths.
func ComputeCompletionSuffix(input, fullText string) (string, bool) {
	if input == "" || fullText == "" {
		return "", false
	}

	rest := fullText
	for _, r := range input {
		f, size := utf8.DecodeRuneInString(rest)
		if size == 0 || !strings.EqualFold(string(r), string(f)) {
			return "", false
		}
		rest = rest[size:]
	}
	return rest, rest != ""
}

// StripProtocol removes http:// or https:// prefix from a URL for matching.
func StripProtocol(url string) string {
	if strings.HasPrefix(url, "https://") {
		return url[8:]
	}
	if strings.HasPrefix(url, "http://") {
		return url[7:]
	}
	return url
}

// InlineCompletion returns the ghost text to show after input for target,
// trying with and without scheme and "www.".
func InlineCompletion(input, target string) (string, bool) {
	stripped := StripProtocol(target)
	if suffix, ok := ComputeCompletionSuffix(input, stripped); ok {
		return suffix, true
	}
	return ComputeCompletionSuffix(input, strings.TrimPrefix(stripped, "www."))
}

// Package url classifies omnibox input and normalizes URLs.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

// hostLike matches "label.tld" with an alphabetic TLD of two or more letters,
// optionally followed by a port and a path, query or fragment.
var hostLike = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?(?:[/?#].*)?$`)

// HasScheme reports whether input carries an explicit scheme the browser can open.
func HasScheme(input string) bool {
	switch {
	case strings.Contains(input, "://"):
		return true
	case strings.HasPrefix(input, "about:"):
		return true
	case strings.HasPrefix(input, "geo:"), strings.HasPrefix(input, "tel:"):
		return true
	}
	return false
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
// Returns true for "github.com", "www.example.org/path", "localhost:8080"
// and anything with an explicit scheme.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || strings.ContainsAny(input, " \t") {
		return false
	}
	if HasScheme(input) {
		return true
	}
	if strings.HasPrefix(strings.ToLower(input), "www.") {
		return true
	}
	if strings.HasPrefix(input, "localhost:") || input == "localhost" {
		return true
	}
	return hostLike.MatchString(input)
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || HasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// ExtractDomain extracts the normalized host from a URL string.
// Strips "www." so youtube.com and www.youtube.com resolve to the same value.
// Ports are dropped.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}

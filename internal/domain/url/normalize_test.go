package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "bare domain", input: "github.com", want: true},
		{name: "domain with path", input: "example.com/a/b?c=d", want: true},
		{name: "subdomain", input: "docs.example.co.uk", want: true},
		{name: "domain with port", input: "example.com:8080/x", want: true},
		{name: "www prefix", input: "www.test", want: true},
		{name: "explicit scheme", input: "ftp://files.example.com", want: true},
		{name: "about page", input: "about:blank", want: true},
		{name: "localhost port", input: "localhost:3000", want: true},
		{name: "plain words", input: "hello world", want: false},
		{name: "single word", input: "golang", want: false},
		{name: "version number", input: "v1.2", want: false},
		{name: "numeric tld", input: "1.5", want: false},
		{name: "dotted query with spaces", input: "what is go.dev", want: false},
		{name: "file name misread as host", input: "notes.txt", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeURL(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "https unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "http unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "bare domain", input: "example.com", want: "https://example.com"},
		{name: "trimmed", input: "  example.com  ", want: "https://example.com"},
		{name: "search text unchanged", input: "go tutorials", want: "go tutorials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=1", "youtube.com"},
		{"https://YouTube.com", "youtube.com"},
		{"http://example.com:8080/path", "example.com"},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.input))
		})
	}
}

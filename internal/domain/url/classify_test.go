package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	const ddg = "https://duckduckgo.com/?q=%s"

	tests := []struct {
		name     string
		input    string
		template string
		want     Target
	}{
		{
			name:  "bare host gets https",
			input: "example.com",
			want:  Target{Kind: TargetURL, URL: "https://example.com"},
		},
		{
			name:  "scheme kept",
			input: "http://example.com/a",
			want:  Target{Kind: TargetURL, URL: "http://example.com/a"},
		},
		{
			name:     "words become a search",
			input:    "hello world",
			template: ddg,
			want:     Target{Kind: TargetSearch, URL: "https://duckduckgo.com/?q=hello+world", Query: "hello world"},
		},
		{
			name:     "template without placeholder appends",
			input:    "golang",
			template: "https://www.bing.com/search?q=",
			want:     Target{Kind: TargetSearch, URL: "https://www.bing.com/search?q=golang", Query: "golang"},
		},
		{
			name:  "empty template falls back",
			input: "a&b",
			want:  Target{Kind: TargetSearch, URL: "https://www.google.com/search?q=a%26b", Query: "a&b"},
		},
		{
			name:  "dotted filename treated as url",
			input: "notes.txt",
			want:  Target{Kind: TargetURL, URL: "https://notes.txt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input, tt.template))
		})
	}
}

func TestTargetKindString(t *testing.T) {
	assert.Equal(t, "url", TargetURL.String())
	assert.Equal(t, "search", TargetSearch.String())
	assert.Equal(t, "unknown", TargetKind(9).String())
}

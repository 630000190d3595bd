package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact keyword", input: "goog", want: "https://www.google.com", wantOK: true},
		{name: "exact short keyword", input: "jd", want: "https://www.jd.com", wantOK: true},
		{name: "case and space insensitive", input: "  GitHub ", want: "https://www.github.com", wantOK: true},
		{name: "prefix scan", input: "stackov", want: "https://stackoverflow.com", wantOK: true},
		{name: "prefix scan picks first sorted key", input: "bil", want: "https://www.bilibili.com", wantOK: true},
		{name: "synthesized dot com", input: "golang", want: "https://www.golang.com", wantOK: true},
		{name: "short unknown", input: "zz", wantOK: false},
		{name: "short prefix of keyword", input: "go", wantOK: false},
		{name: "dotted input not synthesized", input: "foo.bar", wantOK: false},
		{name: "spaces not synthesized", input: "foo bar", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Complete(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompleteDeterministic(t *testing.T) {
	first, _ := Complete("tik")
	for i := 0; i < 20; i++ {
		got, _ := Complete("tik")
		assert.Equal(t, first, got)
	}
}

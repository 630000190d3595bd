package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickActions(t *testing.T) {
	actions := QuickActions("google maps")
	require.Len(t, actions, 2)
	assert.Equal(t, "https://www.google.com", actions[0].TargetURL)
	assert.Equal(t, "geo:0,0?q=google+maps", actions[1].TargetURL)

	actions = QuickActions("tel 555")
	require.Len(t, actions, 1)
	assert.Equal(t, "tel:tel%20555", actions[0].TargetURL)
	assert.Equal(t, TypeQuickAction, actions[0].Type)

	assert.Empty(t, QuickActions("weather"))
	assert.Empty(t, QuickActions("  "))
}

func TestDedupe(t *testing.T) {
	in := []Suggestion{
		{Type: TypeDomainCompletion, TargetURL: "https://a.com"},
		{Type: TypeHistory, TargetURL: "https://b.com"},
		{Type: TypeBookmark, TargetURL: "https://a.com"},
	}
	out := Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, TypeDomainCompletion, out[0].Type)
	assert.Len(t, in, 3)
}

func TestDedupe_NewTabActionKeyedSeparately(t *testing.T) {
	in := []Suggestion{
		{Type: TypeSearchEngine, TargetURL: "https://www.google.com/search?q=go"},
		{Type: TypeNewTabAction, TargetURL: "https://www.google.com/search?q=go"},
		{Type: TypeNewTabAction, TargetURL: "https://www.google.com/search?q=go"},
	}
	out := Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, TypeNewTabAction, out[1].Type)
}

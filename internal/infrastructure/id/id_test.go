package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate("tab")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "tab-"))
	assert.Len(t, id, len("tab-")+21)
}

func TestShort(t *testing.T) {
	id, err := Short("tab")
	require.NoError(t, err)
	assert.Regexp(t, `^tab-[0-9a-z]{10}$`, id)
}

func TestTabIDs_Unique(t *testing.T) {
	gen := TabIDs()
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := gen()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

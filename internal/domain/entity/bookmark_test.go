package entity_test

import (
	"testing"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestBookmark(t *testing.T) {
	b := entity.NewBookmark(1, "https://go.dev", "", t0)
	assert.Equal(t, "https://go.dev", b.Title)

	b.RecordVisit(t0)
	b.RecordVisit(t0)
	assert.Equal(t, int64(2), b.VisitCount)

	assert.True(t, b.Matches("go.dev"))
	assert.False(t, b.Matches("rust"))
	assert.False(t, b.Matches(""))
}

func TestHistoryEntryMatches(t *testing.T) {
	h := entity.NewHistoryEntry("https://www.github.com/bnema", "Profile Page", t0)
	assert.True(t, h.Matches("profile"))
	assert.True(t, h.Matches("github.com"))
	assert.False(t, h.Matches("gitlab"))
}

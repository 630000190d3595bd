package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/omnitab/internal/domain/build"
	"github.com/bnema/omnitab/internal/domain/entity"
)

// isolate points every XDG directory at a fresh temp dir so each test gets
// its own config file and sqlite session.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir+"/config")
	t.Setenv("XDG_DATA_HOME", dir+"/data")
	t.Setenv("XDG_STATE_HOME", dir+"/state")
	t.Setenv("OMNITAB_LOG_LEVEL", "error")
	t.Cleanup(resetFlags)
}

func resetFlags() {
	openNewTab, openIncognito = false, false
	suggestJSON = false
	tabsJSON, tabsNewIncognito, tabsGroupShowCats = false, false, false
	historyJSON, historyMax = false, defaultHistoryMax
	bookmarksJSON = false
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
		app = nil
	}
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "0", want: 0},
		{arg: "9", want: 9},
		{arg: "-1", wantErr: true},
		{arg: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseIndex(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_NoAppNeeded(t *testing.T) {
	isolate(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc"})

	out := mustExecute(t, "version")
	assert.Contains(t, out, "omnitab 1.2.3")
	assert.Nil(t, app)
}

func TestOpen_PersistsAcrossInvocations(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "open", "github.com/bnema")
	assert.Contains(t, out, "https://github.com/bnema")

	var tabs []tabJSON
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "tabs", "list", "--json")), &tabs))
	require.Len(t, tabs, 1)
	assert.Equal(t, "https://github.com/bnema", tabs[0].URL)
	assert.True(t, tabs[0].Active)
	assert.Equal(t, string(entity.CategoryDevelopment), tabs[0].Category)

	var history []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "history", "--json")), &history))
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].VisitCount, "restoring the session is not a visit")
}

func TestOpen_SearchInNewIncognitoTab(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "open", "-i", "golang", "generics")
	assert.Contains(t, out, "search")

	var history []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "history", "list", "--json")), &history))
	assert.Empty(t, history)

	var tabs []tabJSON
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "tabs", "--json")), &tabs))
	assert.Len(t, tabs, 1, "incognito tabs are not saved")
}

func TestTabs_Lifecycle(t *testing.T) {
	isolate(t)

	mustExecute(t, "tabs", "new", "example.com")
	mustExecute(t, "tabs", "new", "example.com/docs")

	var tabs []tabJSON
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "tabs", "switch", "1", "--json")), &tabs))
	require.Len(t, tabs, 3)
	assert.True(t, tabs[1].Active)

	var groups map[string]int
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "tabs", "group", "--json")), &groups))
	assert.Equal(t, map[string]int{"example.com": 2}, groups)

	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "tabs", "close", "0", "--json")), &tabs))
	assert.Len(t, tabs, 2)

	mustExecute(t, "tabs", "close", "0")
	_, err := execute(t, "tabs", "close", "0")
	require.ErrorIs(t, err, entity.ErrLastTabProtected)

	_, err = execute(t, "tabs", "switch", "7")
	require.ErrorIs(t, err, entity.ErrIndexOutOfRange)
}

func TestSuggest_JSON(t *testing.T) {
	isolate(t)

	var items []suggestionJSON
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "suggest", "--json", "github")), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, "domain", items[0].Type)
	assert.Equal(t, "https://www.github.com", items[0].TargetURL)
}

func TestBookmarks_AddListRemove(t *testing.T) {
	isolate(t)

	out := mustExecute(t, "bookmarks", "add", "go.dev", "Go")
	assert.Contains(t, out, "#1")

	_, err := execute(t, "bookmarks", "add", "https://go.dev")
	require.ErrorIs(t, err, entity.ErrDuplicateBookmark)

	var bookmarks []entity.Bookmark
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "bm", "list", "--json")), &bookmarks))
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "Go", bookmarks[0].Title)

	mustExecute(t, "bookmarks", "rm", "1")
	_, err = execute(t, "bookmarks", "rm", "1")
	require.ErrorIs(t, err, entity.ErrBookmarkNotFound)
}

func TestHistory_SearchAndClear(t *testing.T) {
	isolate(t)
	mustExecute(t, "open", "go.dev")
	mustExecute(t, "open", "example.com")

	var history []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, "history", "search", "--json", "go")), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "https://go.dev", history[0].URL)

	mustExecute(t, "history", "rm", "go.dev")
	assert.Contains(t, mustExecute(t, "history", "clear"), "cleared 1 entries")
	assert.Contains(t, mustExecute(t, "history"), "No history.")
}

func TestConfigSchema(t *testing.T) {
	isolate(t)
	out := mustExecute(t, "config", "schema")
	assert.Contains(t, out, "omnibox")
	assert.Contains(t, out, "max_tabs")
}

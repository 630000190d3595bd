package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/url"
)

var bookmarksJSON bool

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage bookmarks",
	RunE:    runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add [url] [title]",
	Short: "Bookmark an address, or the active tab when none is given",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runBookmarksAdd,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

var bookmarksSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bookmark titles and addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarksSearch,
}

var bookmarksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a bookmark by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksRm,
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksClear,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd, bookmarksListCmd, bookmarksSearchCmd, bookmarksRmCmd, bookmarksClearCmd)
	bookmarksCmd.PersistentFlags().BoolVar(&bookmarksJSON, "json", false, "output as JSON")
}

func printBookmarks(cmd *cobra.Command, theme *styles.Theme, bookmarks []entity.Bookmark) error {
	if bookmarksJSON {
		return writeJSON(cmd.OutOrStdout(), bookmarks)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(theme).RenderBookmarks(bookmarks))
	return nil
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}

	var rawURL, title string
	switch len(args) {
	case 0:
		active, _, _ := a.Tabs.Active()
		if active.URL == "" {
			return fmt.Errorf("active tab is blank")
		}
		rawURL, title = active.URL, active.Title
	case 1:
		rawURL = url.Normalize(args[0])
	default:
		rawURL, title = url.Normalize(args[0]), args[1]
	}

	bm, err := a.Bookmarks.Add(a.Ctx(), rawURL, title)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(a.Theme).RenderBookmarkAdded(bm))
	return nil
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	return printBookmarks(cmd, a.Theme, a.Bookmarks.List())
}

func runBookmarksSearch(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	return printBookmarks(cmd, a.Theme, a.Bookmarks.Search(a.Ctx(), joinArgs(args), 0))
}

func runBookmarksRm(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bookmark id %q", args[0])
	}
	if err := a.Bookmarks.Delete(a.Ctx(), entity.BookmarkID(n)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(a.Theme).RenderDone(fmt.Sprintf("removed bookmark #%d", n)))
	return nil
}

func runBookmarksClear(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	a.Bookmarks.ClearAll(a.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(a.Theme).RenderDone("bookmarks cleared"))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/domain/url"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage history",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent history, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search history titles and addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistorySearch,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <url>",
	Short: "Remove one address from history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historySearchCmd, historyRmCmd, historyClearCmd)

	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.PersistentFlags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
}

func printHistory(cmd *cobra.Command, theme *styles.Theme, entries []entity.HistoryEntry) error {
	if historyJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(theme).RenderHistory(entries))
	return nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	return printHistory(cmd, a.Theme, a.History.Recent(historyMax))
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	return printHistory(cmd, a.Theme, a.History.Search(a.Ctx(), joinArgs(args), historyMax))
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	target := url.Normalize(args[0])
	if !a.History.Delete(a.Ctx(), target) {
		return fmt.Errorf("%s is not in history", target)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(a.Theme).RenderDone("removed "+target))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	n := a.History.Count()
	a.History.ClearAll(a.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewHistoryCLIRenderer(a.Theme).RenderDone(fmt.Sprintf("cleared %d entries", n)))
	return nil
}

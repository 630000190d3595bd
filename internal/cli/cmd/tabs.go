package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/entity"
)

var (
	tabsJSON          bool
	tabsNewIncognito  bool
	tabsGroupShowCats bool
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Manage the tab session",
	Long:  `List, open, close, switch and group the tabs of the saved session.`,
	RunE:  runTabsList,
}

var tabsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tabs",
	Args:  cobra.NoArgs,
	RunE:  runTabsList,
}

var tabsNewCmd = &cobra.Command{
	Use:   "new [url or search terms]",
	Short: "Open a new tab, optionally navigating it",
	RunE:  runTabsNew,
}

var tabsCloseCmd = &cobra.Command{
	Use:   "close <index>",
	Short: "Close the tab at index",
	Args:  cobra.ExactArgs(1),
	RunE:  runTabsClose,
}

var tabsSwitchCmd = &cobra.Command{
	Use:   "switch <index>",
	Short: "Activate the tab at index",
	Args:  cobra.ExactArgs(1),
	RunE:  runTabsSwitch,
}

var tabsMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a tab to another position",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsMove,
}

var tabsGroupCmd = &cobra.Command{
	Use:   "group",
	Short: "Group tabs sharing a host",
	Args:  cobra.NoArgs,
	RunE:  runTabsGroup,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.AddCommand(tabsListCmd, tabsNewCmd, tabsCloseCmd, tabsSwitchCmd, tabsMoveCmd, tabsGroupCmd)

	tabsCmd.PersistentFlags().BoolVar(&tabsJSON, "json", false, "output as JSON")
	tabsNewCmd.Flags().BoolVarP(&tabsNewIncognito, "incognito", "i", false, "open an incognito tab")
	tabsGroupCmd.Flags().BoolVar(&tabsGroupShowCats, "categories", false, "also show category counts")
}

// tabJSON is the --json shape of a tab.
type tabJSON struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Active    bool   `json:"active"`
	Incognito bool   `json:"incognito"`
	Group     string `json:"group,omitempty"`
	Category  string `json:"category"`
	State     string `json:"state"`
}

func toTabJSON(tabs []entity.Tab) []tabJSON {
	out := make([]tabJSON, 0, len(tabs))
	for i, t := range tabs {
		out = append(out, tabJSON{
			Index:     i,
			ID:        string(t.ID),
			URL:       t.URL,
			Title:     t.Title,
			Active:    t.Active,
			Incognito: t.Incognito,
			Group:     t.Group,
			Category:  string(t.Category),
			State:     t.State.String(),
		})
	}
	return out
}

func printTabs(cmd *cobra.Command) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	tabs := a.Tabs.List()
	if tabsJSON {
		return writeJSON(cmd.OutOrStdout(), toTabJSON(tabs))
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewTabsCLIRenderer(a.Theme).RenderList(tabs, a.Tabs.MaxTabs()))
	return nil
}

func runTabsList(cmd *cobra.Command, _ []string) error {
	return printTabs(cmd)
}

func runTabsNew(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if _, err := a.Navigate.OpenInNewTab(a.Ctx(), joinArgs(args), tabsNewIncognito); err != nil {
			return err
		}
	} else if _, err := a.Tabs.Create(a.Ctx(), tabsNewIncognito); err != nil {
		return err
	}
	return printTabs(cmd)
}

func runTabsClose(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if err := a.Tabs.Close(a.Ctx(), index); err != nil {
		return err
	}
	return printTabs(cmd)
}

func runTabsSwitch(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if err := a.Tabs.SwitchTo(a.Ctx(), index); err != nil {
		return err
	}
	return printTabs(cmd)
}

func runTabsMove(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	from, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	if err := a.Tabs.Move(a.Ctx(), from, to); err != nil {
		return err
	}
	return printTabs(cmd)
}

func runTabsGroup(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	groups := a.Tabs.AutoGroup(a.Ctx())
	if tabsJSON {
		return writeJSON(cmd.OutOrStdout(), groups)
	}

	r := styles.NewTabsCLIRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderGroups(groups))
	if tabsGroupShowCats {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderCategories(a.Tabs.CategoryCounts()))
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/styles"
	"github.com/bnema/omnitab/internal/domain/url"
)

var (
	openNewTab    bool
	openIncognito bool
)

var openCmd = &cobra.Command{
	Use:   "open <url or search terms>",
	Short: "Open an address or a search in the active tab",
	Long: `Classify the input as an address or a search query and navigate to it.

Examples:
  omnitab open github.com            # https://github.com
  omnitab open golang generics       # search with the default engine
  omnitab open -n example.com        # open in a new tab`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Open the homepage in the active tab",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := GetApp()
		if err != nil {
			return err
		}
		r := styles.NewTabsCLIRenderer(a.Theme)
		if err := a.Navigate.GoHome(a.Ctx()); err != nil {
			return err
		}
		active, _, _ := a.Tabs.Active()
		if active.URL == "" {
			fmt.Fprintln(cmd.OutOrStdout(), r.RenderDone("homepage disabled, tab cleared"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderOpened(url.Target{Kind: url.TargetURL, URL: active.URL}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(homeCmd)

	openCmd.Flags().BoolVarP(&openNewTab, "new-tab", "n", false, "open in a new tab")
	openCmd.Flags().BoolVarP(&openIncognito, "incognito", "i", false, "open in a new incognito tab")
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	input := joinArgs(args)

	var target url.Target
	if openNewTab || openIncognito {
		target, err = a.Navigate.OpenInNewTab(a.Ctx(), input, openIncognito)
	} else {
		target, err = a.Navigate.Open(a.Ctx(), input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewTabsCLIRenderer(a.Theme).RenderOpened(target))
	return nil
}

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/model"
)

var browseCmd = &cobra.Command{
	Use:   "browse [url or search terms]",
	Short: "Launch the interactive omnibox",
	Long: `Launch the terminal omnibox over the saved session.

If input is given, open it in the active tab first.

Examples:
  omnitab browse                  # resume the session
  omnitab browse example.com      # open example.com, then browse`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if _, err := a.Navigate.Open(a.Ctx(), joinArgs(args)); err != nil {
			return err
		}
	}
	a.WatchConfig()

	var p *tea.Program
	omnibox, stop := a.NewOmnibox(model.Poster(func(msg tea.Msg) { p.Send(msg) }))
	defer stop()

	m := model.NewOmniboxModel(a.Ctx(), a.Theme, model.OmniboxDeps{
		Omnibox:   omnibox,
		Tabs:      a.Tabs,
		Navigate:  a.Navigate,
		Bookmarks: a.Bookmarks,
	})
	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

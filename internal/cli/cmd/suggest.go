package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/omnitab/internal/cli/styles"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Print omnibox suggestions for a query",
	Long:  `Compute the ranked suggestion list the omnibox would show for query.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
}

// suggestionJSON is the --json shape of a suggestion.
type suggestionJSON struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	TargetURL string `json:"target_url"`
}

func runSuggest(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	query := joinArgs(args)
	items := a.Suggest.Compute(a.Ctx(), query)

	if suggestJSON {
		out := make([]suggestionJSON, 0, len(items))
		for _, s := range items {
			out = append(out, suggestionJSON{
				Type:      s.Type.String(),
				Title:     s.Title,
				Subtitle:  s.Subtitle,
				TargetURL: s.TargetURL,
			})
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	r := styles.NewSuggestionRenderer(a.Theme)
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderEmpty(query))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderList(items, -1))
	return nil
}

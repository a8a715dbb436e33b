package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchDomain string
	searchLimit  int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a design domain",
	Long: "Ranks the domain's corpus against the query and prints the top matches. " +
		"Without --domain the domain is auto-detected from the query text.",
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchDomain, "domain", "", "Domain to search (auto-detected when empty)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	engine := newLocalEngine()

	resp, err := engine.Search(cmd.Context(), searchDomain, strings.Join(args, " "), searchLimit, false)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

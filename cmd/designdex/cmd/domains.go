package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/designdex/internal/domain"
)

var domainsJSON bool

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List searchable domains",
	RunE:  runDomains,
}

func init() {
	domainsCmd.Flags().BoolVar(&domainsJSON, "json", false, "Output as JSON")
}

func runDomains(cmd *cobra.Command, args []string) error {
	if domainsJSON {
		return printJSON(map[string]any{
			"domains": domain.DomainNames(),
			"count":   len(domain.DomainNames()),
		})
	}

	for _, cfg := range domain.Domains() {
		fmt.Printf("%-12s %s\n", cfg.Name(), cfg.File())
	}
	return nil
}

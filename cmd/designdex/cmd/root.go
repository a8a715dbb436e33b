package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/repository/corpus"
	"github.com/kailas-cloud/designdex/internal/repository/resultcache"
	searchuc "github.com/kailas-cloud/designdex/internal/usecase/search"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "designdex",
	Short: "designdex is a design asset search engine",
	Long: "Lexical search over curated design corpora (colors, typography, components, " +
		"layouts, and more) with domain auto-detection and design system recommendations.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data/design", "Corpus data directory")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(domainsCmd)
}

// newLocalEngine builds an in-process engine over the data directory.
// CLI invocations are one-shot, so the memory cache is effectively a
// per-run dedupe and never persists.
func newLocalEngine() *searchuc.Engine {
	return searchuc.New(corpus.New(dataDir), resultcache.NewMemory(), zap.NewNop())
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

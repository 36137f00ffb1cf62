package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/mkstat/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mkstat",
	Short: "Track page completion across a MkDocs site",
	Long: `mkstat reads the nav tree from a MkDocs configuration, flattens it into
the manuscript page order, and derives completion metadata for each page:
which pages still need writing, and a machine-readable status report.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mkstat %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// defaultConfigPath resolves the configuration file flag default, with
// an env var fallback for repos that keep mkdocs.yml elsewhere.
func defaultConfigPath() string {
	if env := os.Getenv("MKSTAT_CONFIG"); env != "" {
		return env
	}
	return "mkdocs.yml"
}

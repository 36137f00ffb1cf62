package cmd

import (
	"fmt"

	"github.com/itsmostafa/mkstat/internal/nav"
	"github.com/itsmostafa/mkstat/internal/report"
	"github.com/spf13/cobra"
)

var (
	statusConfig string
	statusDocs   string
	statusOut    string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Generate a completion status report for every page",
	Long: `Status classifies every page in the nav tree as completed or pending
and writes the result as a JSON array. Pages that cannot be read are
reported and counted as pending; the report is only skipped entirely
when the configuration itself cannot be loaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := nav.LoadConfig(statusConfig)
		if err != nil {
			// No output file is written on a config failure.
			fmt.Fprintf(out, "%s %v\n", errorStyle.Render("Failed to generate status:"), err)
			return nil
		}

		pages := nav.Pages(cfg)
		records := report.Generate(pages, statusDocs, out)
		if err := report.WriteStatus(statusOut, records); err != nil {
			return fmt.Errorf("write %s: %w", statusOut, err)
		}

		fmt.Fprintf(out, "%s status for %d pages -> %s\n",
			successStyle.Render("Generated"), len(records), statusOut)
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusConfig, "config", "c", defaultConfigPath(), "MkDocs configuration file")
	statusCmd.Flags().StringVarP(&statusDocs, "docs", "d", "docs", "Documentation root directory")
	statusCmd.Flags().StringVarP(&statusOut, "out", "o", "pages_status.json", "Output file")
	rootCmd.AddCommand(statusCmd)
}

package cmd

import (
	"fmt"

	"github.com/itsmostafa/mkstat/internal/nav"
	"github.com/itsmostafa/mkstat/internal/report"
	"github.com/spf13/cobra"
)

var (
	pickConfig string
	pickDocs   string
	pickOut    string
	pickStart  float64
	pickEnd    float64
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Select a contiguous range of pages for manual authoring",
	Long: `Pick flattens the nav tree and writes the pages between two fractional
offsets of the full list to a plain-text file, one docs-root-prefixed
path per line. Both ends of the range are inclusive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := nav.LoadConfig(pickConfig)
		if err != nil {
			return err
		}

		pages := nav.Pages(cfg)
		selected := report.Slice(pages, pickStart, pickEnd)
		if err := report.WritePageList(pickOut, pickDocs, selected); err != nil {
			return fmt.Errorf("write %s: %w", pickOut, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d pages -> %s\n",
			successStyle.Render("Selected"), len(selected), len(pages), pickOut)
		return nil
	},
}

func init() {
	pickCmd.Flags().StringVarP(&pickConfig, "config", "c", defaultConfigPath(), "MkDocs configuration file")
	pickCmd.Flags().StringVarP(&pickDocs, "docs", "d", "docs", "Documentation root directory")
	pickCmd.Flags().StringVarP(&pickOut, "out", "o", "pages_to_fill.txt", "Output file")
	pickCmd.Flags().Float64Var(&pickStart, "start", 0.11, "Start of the range as a fraction of the page count")
	pickCmd.Flags().Float64Var(&pickEnd, "end", 0.15, "End of the range as a fraction of the page count")
	rootCmd.AddCommand(pickCmd)
}

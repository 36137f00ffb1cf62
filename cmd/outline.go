package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/mkstat/internal/outline"
	"github.com/spf13/cobra"
)

var outlineDocs string

var outlineCmd = &cobra.Command{
	Use:   "outline <page>",
	Short: "Print the header outline of a single page",
	Long: `Outline reads one page from the docs root and prints its markdown
headers as an indented table of contents. Headers inside fenced code
blocks are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(outlineDocs, args[0])
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read page: %w", err)
		}

		nodes := outline.Parse(string(content))
		if len(nodes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("no headers"))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), outline.Render(nodes, 0))
		return nil
	},
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineDocs, "docs", "d", "docs", "Documentation root directory")
	rootCmd.AddCommand(outlineCmd)
}

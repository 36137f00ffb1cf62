package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/itsmostafa/mkstat/internal/analyze"
	"github.com/itsmostafa/mkstat/internal/nav"
	"github.com/spf13/cobra"
)

var (
	listConfig    string
	listDocs      string
	listPending   bool
	listCompleted bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the flattened page list",
	Long: `List prints every page in the nav tree in manuscript order with its
index. With --pending or --completed, pages are classified first and
only the matching ones are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := nav.LoadConfig(listConfig)
		if err != nil {
			return err
		}

		filtered := listPending || listCompleted
		for _, p := range nav.Pages(cfg) {
			if filtered {
				completed := analyze.File(filepath.Join(listDocs, p.Path), out)
				if listPending && completed {
					continue
				}
				if listCompleted && !completed {
					continue
				}
				marker := pendingStyle.Render("○")
				if completed {
					marker = successStyle.Render("●")
				}
				fmt.Fprintf(out, "%s %s %s\n", dimStyle.Render(fmt.Sprintf("%4d", p.Index)), marker, p.Path)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", dimStyle.Render(fmt.Sprintf("%4d", p.Index)), p.Path)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listConfig, "config", "c", defaultConfigPath(), "MkDocs configuration file")
	listCmd.Flags().StringVarP(&listDocs, "docs", "d", "docs", "Documentation root directory")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Only show pages that still need writing")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only show completed pages")
	rootCmd.AddCommand(listCmd)
}

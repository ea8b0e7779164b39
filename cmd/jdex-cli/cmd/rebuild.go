package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rescan the hierarchy and replace the index",
	Long: `Walk the three levels of the folder hierarchy and write a fresh
index. Folders that do not follow the Johnny Decimal naming rules are
skipped with a warning; the rebuild itself still succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := commands.NewRebuildCommand(GetRepo(), GetStore()).Execute()
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d areas, %d categories, %d ids\n",
			report.AreaCount, report.CategoryCount, report.IDCount)
		for _, w := range report.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

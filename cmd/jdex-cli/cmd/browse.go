package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Browse the hierarchy",
	Long: `Browse the indexed hierarchy by code. Without arguments lists all
areas. An area code lists its categories, a category code its ids, and
a full id code shows that single entry. Anything else is searched.

Examples:
  jdex-cli browse
  jdex-cli browse 10-19
  jdex-cli browse 11
  jdex-cli browse 11.01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		index, err := GetStore().Load()
		if err != nil {
			return err
		}

		results, err := commands.NewBrowseCommand(index, GetRepo().Root(), query).Execute()
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			printResult(r)
		}
		return nil
	},
}

func printResult(r commands.Result) {
	if r.Crumb != "" {
		fmt.Printf("[%s] %s  (%s)\n", r.Level, r.Name, r.Crumb)
		return
	}
	fmt.Printf("[%s] %s\n", r.Level, r.Name)
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

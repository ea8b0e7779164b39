package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

var searchLevel string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the index",
	Long: `Search the index by code or name fragment. Exact code matches rank
first, then names starting with the query, then substring matches.

Examples:
  jdex-cli search mortgage
  jdex-cli search 11.01
  jdex-cli search --level category tax`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := domain.LevelNone
		if searchLevel != "" {
			parsed, err := domain.ParseLevelName(searchLevel)
			if err != nil {
				return err
			}
			level = parsed
		}

		index, err := GetStore().Load()
		if err != nil {
			return err
		}

		results := commands.NewSearchCommand(index, GetRepo().Root(), args[0], level).Execute()
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

func init() {
	searchCmd.Flags().StringVarP(&searchLevel, "level", "l", "", "restrict to one level: area, category, or id")
	rootCmd.AddCommand(searchCmd)
}

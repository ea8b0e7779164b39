package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var newSlot string

var newCmd = &cobra.Command{
	Use:   "new <category> [name]",
	Short: "Create a new id folder",
	Long: `Create a new id folder in a category. With only a category code the
free slots are listed: gaps between existing ids first, then the next
slot past the highest one. With a name the folder is created in the
first suggested slot, or in the slot given with --slot.

Examples:
  jdex-cli new 11
  jdex-cli new 11 "Tax returns"
  jdex-cli new 11 "Tax returns" --slot 11.07`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := commands.CreateSession{CategoryCode: args[0], ProposedSlot: newSlot}
		create := commands.NewCreateCommand(GetStore(), GetRepo())

		if len(args) == 1 {
			suggestions, err := create.Slots(session)
			if err != nil {
				return err
			}
			for _, slot := range suggestions.Gaps {
				fmt.Printf("%s  (gap)\n", slot)
			}
			if suggestions.Append != "" {
				fmt.Printf("%s  (append)\n", suggestions.Append)
			}
			return nil
		}

		if session.ProposedSlot == "" {
			suggestions, err := create.Slots(session)
			if err != nil {
				return err
			}
			all := suggestions.All()
			if len(all) == 0 {
				return fmt.Errorf("no slot to suggest in %s, pass one with --slot", session.CategoryCode)
			}
			session.ProposedSlot = all[0]
		}

		result, err := create.Execute(commands.CreateRequest{Session: session, Name: args[1]})
		if err != nil {
			return err
		}

		fmt.Printf("Created %s\n%s\n", result.FolderName, result.Path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newSlot, "slot", "s", "", "full id code to claim (e.g. 11.03)")
	rootCmd.AddCommand(newCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/clipboard"
	"jdex/internal/adapters/finder"
	"jdex/internal/application"
)

var (
	pathCopy bool
	pathOpen bool
)

var pathCmd = &cobra.Command{
	Use:   "path <code>",
	Short: "Resolve a code to its filesystem path",
	Long: `Resolve a Johnny Decimal code to the folder it names, derived from
the index without touching the disk.

Examples:
  jdex-cli path 11.01
  jdex-cli path 11.01 --copy
  jdex-cli path 10-19 --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := GetStore().Load()
		if err != nil {
			return err
		}

		path, err := application.ResolvePath(GetRepo().Root(), index, args[0])
		if err != nil {
			return err
		}

		fmt.Println(path)

		if pathCopy {
			if err := clipboard.New().Copy(path); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
		}
		if pathOpen {
			if err := finder.New().Open(path); err != nil {
				return fmt.Errorf("opening folder: %w", err)
			}
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().BoolVarP(&pathCopy, "copy", "c", false, "copy the path to the clipboard")
	pathCmd.Flags().BoolVarP(&pathOpen, "open", "o", false, "open the folder in the file manager")
	rootCmd.AddCommand(pathCmd)
}

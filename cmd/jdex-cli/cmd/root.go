package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/config"
	"jdex/internal/ports"
)

var (
	rootPath  string
	indexPath string
	store     ports.IndexStore
	repo      ports.VaultRepository
)

var rootCmd = &cobra.Command{
	Use:   "jdex-cli",
	Short: "CLI for Johnny Decimal folder hierarchies",
	Long: `jdex-cli browses, searches, and extends a folder hierarchy organized
with the Johnny Decimal system, backed by a cached index so lookups
never rescan the disk.

Run "jdex-cli rebuild" once to index an existing hierarchy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = jsonstore.New(indexPath)
		repo = filesystem.NewRepository(rootPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.Root(), "path to the hierarchy root")
	rootCmd.PersistentFlags().StringVar(&indexPath, "index", config.IndexPath(), "path to the index document")
}

// GetStore returns the initialized index store
func GetStore() ports.IndexStore {
	return store
}

// GetRepo returns the initialized vault repository
func GetRepo() ports.VaultRepository {
	return repo
}

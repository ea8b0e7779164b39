package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/clipboard"
	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/finder"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/adapters/tui"
	"jdex/internal/config"
)

func main() {
	store := jsonstore.New(config.IndexPath())
	repo := filesystem.NewRepository(config.Root())

	app := tui.NewApp(store, repo, clipboard.New(), finder.New())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

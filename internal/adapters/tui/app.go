package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/views"
	"jdex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewCreate
)

// App is the main TUI application model
type App struct {
	state   ViewState
	browser *views.BrowserModel
	create  *views.CreateModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.IndexStore, repo ports.VaultRepository, copier ports.Copier, opener ports.Opener) *App {
	return &App{
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store, repo, copier, opener),
		create:  views.NewCreateModel(store, repo),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.Start(msg.CategoryCode)
		return a, a.create.Init()

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.CreateDoneMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(fmt.Sprintf("Created %s", msg.Result.Path), false)
		return a, a.browser.Reload()

	case views.CreateErrMsg:
		a.create.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewCreate {
		return a.create.View()
	}
	return a.browser.View()
}

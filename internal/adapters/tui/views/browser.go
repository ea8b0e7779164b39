package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view. Plain letters
// feed the query input, so actions live on control chords and arrows.
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Enter    key.Binding
	Back     key.Binding
	Yank     key.Binding
	Open     key.Binding
	New      key.Binding
	Rebuild  key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "drill in"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open folder"),
	),
	New: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "new"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rebuild"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// BrowserModel is the model for the query-driven browser view. One text
// input drives everything: codes drill into the hierarchy, free text
// searches across it.
type BrowserModel struct {
	ViewState
	store  ports.IndexStore
	repo   ports.VaultRepository
	copier ports.Copier
	opener ports.Opener

	index     *domain.Index
	input     textinput.Model
	results   []commands.Result
	paginator *Paginator
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.IndexStore, repo ports.VaultRepository, copier ports.Copier, opener ports.Opener) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "11.01, 10-19, or free text"
	input.Prompt = "> "
	input.Focus()

	return &BrowserModel{
		store:     store,
		repo:      repo,
		copier:    copier,
		opener:    opener,
		input:     input,
		paginator: NewPaginator(15),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadIndex)
}

func (m *BrowserModel) loadIndex() tea.Msg {
	index, err := m.store.Load()
	if err != nil {
		return errMsg{err}
	}
	return indexLoadedMsg{index}
}

type indexLoadedMsg struct {
	index *domain.Index
}

type errMsg struct {
	err error
}

type rebuildDoneMsg struct {
	report *domain.ScanReport
}

type copiedMsg struct {
	path string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case indexLoadedMsg:
		m.index = msg.index
		m.refreshResults()
		return m, nil

	case rebuildDoneMsg:
		r := msg.report
		text := fmt.Sprintf("Indexed %d areas, %d categories, %d ids", r.AreaCount, r.CategoryCount, r.IDCount)
		if len(r.Warnings) > 0 {
			text += fmt.Sprintf(" (%d warnings)", len(r.Warnings))
		}
		m.SetMessage(text, false)
		return m, m.loadIndex

	case copiedMsg:
		m.SetMessage(fmt.Sprintf("Copied %s", msg.path), false)
		return m, nil

	case errMsg:
		switch {
		case errors.Is(msg.err, application.ErrIndexMissing):
			m.SetMessage("No index yet. Press ctrl+r to scan the hierarchy.", true)
		case errors.Is(msg.err, application.ErrIndexCorrupt):
			m.SetMessage(fmt.Sprintf("%v. Press ctrl+r to rebuild.", msg.err), true)
		default:
			m.SetMessage(msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			return m, m.drillIn()

		case key.Matches(msg, BrowserKeys.Back):
			return m, m.climbOut()

		case key.Matches(msg, BrowserKeys.Yank):
			return m, m.yankPath()

		case key.Matches(msg, BrowserKeys.Open):
			return m, m.openFolder()

		case key.Matches(msg, BrowserKeys.New):
			code := ""
			if r := m.selectedResult(); r != nil {
				code = r.CategoryCode
			}
			return m, func() tea.Msg {
				return SwitchToCreateMsg{CategoryCode: code}
			}

		case key.Matches(msg, BrowserKeys.Rebuild):
			return m, m.rebuild
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshResults()
	}
	return m, cmd
}

// drillIn replaces the query with the selected entry's code, so areas
// list their categories and categories their ids. Ids and sections are
// leaves; an id copies its path instead.
func (m *BrowserModel) drillIn() tea.Cmd {
	r := m.selectedResult()
	if r == nil {
		return nil
	}
	if r.Level == domain.LevelID {
		return m.yankPath()
	}
	m.input.SetValue(r.Code)
	m.input.CursorEnd()
	m.refreshResults()
	return nil
}

// climbOut steps one level up from the current query, clearing it once
// the top is reached.
func (m *BrowserModel) climbOut() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	next := ""
	switch domain.ParseCode(query) {
	case domain.LevelID:
		next = domain.CategoryOf(query)
	case domain.LevelCategory:
		if m.index != nil {
			next, _ = m.index.AreaForCategory(query)
		}
	}
	m.input.SetValue(next)
	m.input.CursorEnd()
	m.refreshResults()
	return nil
}

func (m *BrowserModel) yankPath() tea.Cmd {
	r := m.selectedResult()
	if r == nil || r.Path == "" {
		return nil
	}
	if m.copier == nil {
		m.SetMessage("Clipboard not available", true)
		return nil
	}
	path := r.Path
	return func() tea.Msg {
		if err := m.copier.Copy(path); err != nil {
			return errMsg{err}
		}
		return copiedMsg{path}
	}
}

func (m *BrowserModel) openFolder() tea.Cmd {
	r := m.selectedResult()
	if r == nil || r.Path == "" {
		return nil
	}
	if m.opener == nil {
		m.SetMessage("No file manager available", true)
		return nil
	}
	path := r.Path
	return func() tea.Msg {
		if err := m.opener.Open(path); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (m *BrowserModel) rebuild() tea.Msg {
	index, report, err := m.repo.Scan()
	if err != nil {
		return errMsg{err}
	}
	if err := m.store.Save(index); err != nil {
		return errMsg{err}
	}
	return rebuildDoneMsg{report}
}

func (m *BrowserModel) selectedResult() *commands.Result {
	cursor := m.paginator.Cursor()
	if cursor >= 0 && cursor < len(m.results) {
		return &m.results[cursor]
	}
	return nil
}

func (m *BrowserModel) refreshResults() {
	if m.index == nil {
		m.results = nil
		m.paginator.Reset()
		return
	}

	query := strings.TrimSpace(m.input.Value())
	results, err := commands.NewBrowseCommand(m.index, m.repo.Root(), query).Execute()
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			m.results = nil
			m.paginator.Reset()
			m.SetMessage(fmt.Sprintf("Nothing at %s", query), true)
			return
		}
		m.results = nil
		m.paginator.Reset()
		m.SetMessage(err.Error(), true)
		return
	}

	m.results = results
	m.paginator.Reset()
	m.paginator.SetTotal(len(results))
}

// Reload reloads the index from the store
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadIndex
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jdex"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Johnny Decimal index"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(styles.MutedText.Render("No results"))
		b.WriteString("\n")
	} else {
		start, end := m.paginator.VisibleRange()
		cursor := m.paginator.Cursor()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(&m.results[i], i == cursor))
			b.WriteString("\n")
		}

		if m.paginator.TotalPages() > 1 {
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("Page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
			b.WriteString("\n")
		}

		if r := m.selectedResult(); r != nil {
			b.WriteString("\n")
			if r.Crumb != "" {
				b.WriteString(styles.MutedText.Render(r.Crumb))
				b.WriteString("\n")
			}
			if r.Path != "" {
				b.WriteString(styles.MutedText.Render(r.Path))
				b.WriteString("\n")
			}
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderResult(r *commands.Result, selected bool) string {
	var style lipgloss.Style
	switch {
	case r.Section:
		style = styles.NodeSection
	case r.Level == domain.LevelArea:
		style = styles.NodeArea
	case r.Level == domain.LevelCategory:
		style = styles.NodeCategory
	default:
		style = styles.NodeID
	}

	text := r.Name
	if selected {
		return "  " + styles.NodeSelected.Render(" "+text+" ")
	}
	return "  " + style.Render(text)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "navigate"},
		{"enter", "drill in"},
		{"esc", "back"},
		{"ctrl+y", "copy path"},
		{"ctrl+o", "open"},
		{"ctrl+t", "new"},
		{"ctrl+r", "rebuild"},
		{"ctrl+c", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// CreateStep is one step of the guided creation flow
type CreateStep int

const (
	CreateStepCategory CreateStep = iota
	CreateStepSlot
	CreateStepName
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var CreateKeys = CreateKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "ctrl+p"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "ctrl+n"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// CreateModel is the model for the guided creation flow: pick a
// category, pick a slot, name the folder. Each step round-trips through
// the command layer so a stale suggestion fails at confirmation instead
// of silently colliding.
type CreateModel struct {
	ViewState
	cmd *commands.CreateCommand

	step    CreateStep
	session commands.CreateSession

	choices    []commands.CategoryChoice
	suggestion domain.SlotSuggestions
	slots      []string
	cursor     int
	nameInput  textinput.Model
}

// NewCreateModel creates a new create view model
func NewCreateModel(store ports.IndexStore, repo ports.VaultRepository) *CreateModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Folder name"
	nameInput.Prompt = "> "
	nameInput.CharLimit = 100

	return &CreateModel{
		cmd:       commands.NewCreateCommand(store, repo),
		nameInput: nameInput,
	}
}

// Start resets the flow. A non-empty category code skips straight to
// slot selection.
func (m *CreateModel) Start(categoryCode string) {
	m.step = CreateStepCategory
	m.session = commands.CreateSession{}
	m.choices = nil
	m.suggestion = domain.SlotSuggestions{}
	m.slots = nil
	m.cursor = 0
	m.nameInput.SetValue("")
	m.nameInput.Blur()
	m.ClearMessage()

	if categoryCode != "" {
		m.session.CategoryCode = categoryCode
		m.step = CreateStepSlot
	}
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	if m.step == CreateStepSlot {
		return tea.Batch(textinput.Blink, m.loadSlots)
	}
	return tea.Batch(textinput.Blink, m.loadCategories)
}

func (m *CreateModel) loadCategories() tea.Msg {
	choices, err := m.cmd.Categories()
	if err != nil {
		return CreateErrMsg{Err: err}
	}
	return categoriesLoadedMsg{choices}
}

func (m *CreateModel) loadSlots() tea.Msg {
	suggestions, err := m.cmd.Slots(m.session)
	if err != nil {
		return CreateErrMsg{Err: err}
	}
	return slotsLoadedMsg{suggestions}
}

func (m *CreateModel) create() tea.Msg {
	req := commands.CreateRequest{
		Session: m.session,
		Name:    strings.TrimSpace(m.nameInput.Value()),
	}
	result, err := m.cmd.Execute(req)
	if err != nil {
		return CreateErrMsg{Err: err}
	}
	return CreateDoneMsg{Result: result}
}

type categoriesLoadedMsg struct {
	choices []commands.CategoryChoice
}

type slotsLoadedMsg struct {
	suggestions domain.SlotSuggestions
}

// CreateDoneMsg indicates the folder was created and indexed
type CreateDoneMsg struct {
	Result *commands.CreateResult
}

// CreateErrMsg indicates an error during creation
type CreateErrMsg struct {
	Err error
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case categoriesLoadedMsg:
		m.choices = msg.choices
		m.cursor = 0
		return m, nil

	case slotsLoadedMsg:
		m.suggestion = msg.suggestions
		m.slots = msg.suggestions.All()
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, CreateKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, CreateKeys.Back):
			return m, m.back()

		case key.Matches(msg, CreateKeys.Select):
			return m, m.selectCurrent()
		}

		if m.step == CreateStepName {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, CreateKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, CreateKeys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
		}
		return m, nil
	}

	// Non-key messages (cursor blink) still reach the name input
	if m.step == CreateStepName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CreateModel) listLen() int {
	if m.step == CreateStepCategory {
		return len(m.choices)
	}
	return len(m.slots)
}

func (m *CreateModel) back() tea.Cmd {
	switch m.step {
	case CreateStepName:
		m.step = CreateStepSlot
		m.session.ProposedSlot = ""
		m.nameInput.Blur()
		m.cursor = 0
		return m.loadSlots
	case CreateStepSlot:
		m.step = CreateStepCategory
		m.session = commands.CreateSession{}
		m.cursor = 0
		return m.loadCategories
	default:
		return func() tea.Msg {
			return SwitchToBrowserMsg{}
		}
	}
}

func (m *CreateModel) selectCurrent() tea.Cmd {
	switch m.step {
	case CreateStepCategory:
		if m.cursor >= len(m.choices) {
			return nil
		}
		choice := m.choices[m.cursor]
		if choice.Full {
			m.SetMessage(fmt.Sprintf("Category %s is full", choice.Code), true)
			return nil
		}
		m.session.CategoryCode = choice.Code
		m.step = CreateStepSlot
		m.cursor = 0
		return m.loadSlots

	case CreateStepSlot:
		if m.cursor >= len(m.slots) {
			return nil
		}
		m.session.ProposedSlot = m.slots[m.cursor]
		m.step = CreateStepName
		m.nameInput.Focus()
		return textinput.Blink

	default:
		if strings.TrimSpace(m.nameInput.Value()) == "" {
			m.SetMessage("Folder name is required", true)
			return nil
		}
		return m.create
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New folder"))
	b.WriteString("\n\n")

	switch m.step {
	case CreateStepCategory:
		b.WriteString(styles.InputLabel.Render("Category:"))
		b.WriteString("\n\n")
		if len(m.choices) == 0 {
			b.WriteString(styles.MutedText.Render("No categories indexed yet"))
			b.WriteString("\n")
		}
		for i, choice := range m.choices {
			line := fmt.Sprintf("%s  %s", choice.Name, m.choiceHint(choice))
			if i == m.cursor {
				b.WriteString("  " + styles.NodeSelected.Render(" "+line+" "))
			} else {
				b.WriteString("  " + styles.NodeCategory.Render(choice.Name) + "  " + styles.MutedText.Render(m.choiceHint(choice)))
			}
			b.WriteString("\n")
		}

	case CreateStepSlot:
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Slot in %s:", m.session.CategoryCode)))
		b.WriteString("\n\n")
		for i, slot := range m.slots {
			label := slot
			if slot == m.suggestion.Append {
				label += "  (append)"
			} else {
				label += "  (gap)"
			}
			if i == m.cursor {
				b.WriteString("  " + styles.NodeSelected.Render(" "+label+" "))
			} else {
				b.WriteString("  " + styles.NodeID.Render(label))
			}
			b.WriteString("\n")
		}

	default:
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Name for %s:", m.session.ProposedSlot)))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.nameInput.View()))
		b.WriteString("\n")
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
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("select"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
		styles.HelpKey.Render("ctrl+c"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *CreateModel) choiceHint(choice commands.CategoryChoice) string {
	if choice.Full {
		return "full"
	}
	return "next " + choice.NextSlot
}

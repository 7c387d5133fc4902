package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/model"
)

func menuHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

// MenuAction identifies what the user chose to do from the browse menu.
type MenuAction string

const (
	ActionQuit   MenuAction = "quit"
	ActionNew    MenuAction = "new"
	ActionView   MenuAction = "view"
	ActionEdit   MenuAction = "edit"
	ActionDelete MenuAction = "delete"
)

// MenuModel is the main browse screen: the entry list plus single-key
// actions. It quits with an action for the command layer to execute, so
// one Run covers one user decision.
type MenuModel struct {
	list     list.Model
	action   MenuAction
	selected *model.Entry
	quitting bool
}

// NewMenu builds the browse menu over the given entries.
func NewMenu(entries []model.Entry, dateFormat string) MenuModel {
	if dateFormat == "" {
		dateFormat = model.DefaultConfig().DateFormat
	}

	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry, dateFormat: dateFormat}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Journal"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = menuHelpKeys
	l.AdditionalFullHelpKeys = menuHelpKeys

	return MenuModel{list: l, action: ActionQuit}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		// Keystrokes belong to the filter prompt while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.action = ActionQuit

			return m, tea.Quit

		case "n":
			m.quitting = true
			m.action = ActionNew

			return m, tea.Quit

		case "enter":
			return m.choose(ActionView)

		case "e":
			return m.choose(ActionEdit)

		case "d":
			return m.choose(ActionDelete)
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MenuModel) choose(action MenuAction) (tea.Model, tea.Cmd) {
	i, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return m, nil
	}

	m.quitting = true
	m.action = action
	m.selected = &i.entry

	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Action returns what the user chose when the menu quit.
func (m MenuModel) Action() MenuAction {
	return m.action
}

// Selected returns the entry the action applies to, nil for actions that
// need none (new, quit).
func (m MenuModel) Selected() *model.Entry {
	return m.selected
}

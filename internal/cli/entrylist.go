package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/jotr/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type entryItem struct {
	entry      model.Entry
	dateFormat string
	marked     bool
}

func (i entryItem) Title() string {
	mark := ""
	if i.marked {
		mark = "✓ "
	}

	return fmt.Sprintf("%s%s", mark, i.entry.Title)
}

func (i entryItem) Description() string {
	desc := i.entry.CreatedAt.Format(i.dateFormat)

	if preview := i.entry.Preview(); preview != "" {
		desc = fmt.Sprintf("%s | %s", desc, preview)
	}

	return desc
}

func (i entryItem) FilterValue() string {
	return i.entry.Title
}

type EntryListModel struct {
	list          list.Model
	selectedEntry *model.Entry
	marked        map[string]bool
	multiSelect   bool
	quitting      bool
}

func (m EntryListModel) Init() tea.Cmd {
	return nil
}

func (m EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			return m, tea.Quit

		case " ":
			if m.multiSelect {
				return m.toggleMarked()
			}

		case "enter":
			i, ok := m.list.SelectedItem().(entryItem)
			if ok {
				m.selectedEntry = &i.entry
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m EntryListModel) toggleMarked() (tea.Model, tea.Cmd) {
	i, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return m, nil
	}

	i.marked = !i.marked

	if i.marked {
		m.marked[i.entry.ID] = true
	} else {
		delete(m.marked, i.entry.ID)
	}

	return m, m.list.SetItem(m.list.Index(), i)
}

func (m EntryListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedEntry returns the entry confirmed with enter, or nil when
// the list was dismissed.
func (m EntryListModel) GetSelectedEntry() *model.Entry {
	return m.selectedEntry
}

// MarkedIDs returns the ids toggled in multi-select mode.
func (m EntryListModel) MarkedIDs() []string {
	ids := make([]string, 0, len(m.marked))
	for id := range m.marked {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// NewEntryList builds an interactive entry list. Entries are shown in the
// order given. With multiSelect, space toggles per-entry marks for batch
// actions and enter confirms.
func NewEntryList(title string, entries []model.Entry, dateFormat string, multiSelect bool) EntryListModel {
	if dateFormat == "" {
		dateFormat = model.DefaultConfig().DateFormat
	}

	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry, dateFormat: dateFormat}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return EntryListModel{
		list:        l,
		marked:      make(map[string]bool),
		multiSelect: multiSelect,
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editorFieldCount counts the focusable inputs before the save button.
const editorFieldCount = 2

// EditorModel is the compose form: a title input, a content textarea and
// a save button. Saving requires a non-empty trimmed title.
type EditorModel struct {
	titleInput  textinput.Model
	contentArea textarea.Model
	focusIndex  int
	header      string
	Saved       bool
	quitting    bool
}

// NewEditorModel builds the compose form, prefilled for edits.
func NewEditorModel(header, title, content string) EditorModel {
	ti := textinput.New()
	ti.Placeholder = "Entry title"
	ti.CharLimit = 256
	ti.SetValue(title)
	ti.Focus()
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle
	ti.Cursor.Style = cursorStyle

	ta := textarea.New()
	ta.Placeholder = "Write here..."
	ta.SetValue(content)
	ta.SetWidth(72)
	ta.SetHeight(12)
	ta.CharLimit = 0

	return EditorModel{
		titleInput:  ti,
		contentArea: ta,
		header:      header,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 6
		if w > 100 {
			w = 100
		}

		if w > 0 {
			m.contentArea.SetWidth(w)
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true

			return m, tea.Quit

		case "ctrl+s":
			if m.CanSave() {
				m.Saved = true

				return m, tea.Quit
			}

			return m, nil

		case "tab", "shift+tab":
			if msg.String() == "shift+tab" {
				return m.setFocus(m.focusIndex - 1)
			}

			return m.setFocus(m.focusIndex + 1)

		case "enter":
			switch m.focusIndex {
			case 0:
				// Title confirmed, move into the content area
				return m.setFocus(1)
			case editorFieldCount:
				if m.CanSave() {
					m.Saved = true

					return m, tea.Quit
				}

				return m, nil
			}
			// Enter inside the textarea inserts a newline
		}
	}

	return m.updateInputs(msg)
}

func (m EditorModel) setFocus(index int) (tea.Model, tea.Cmd) {
	if index < 0 {
		index = editorFieldCount
	} else if index > editorFieldCount {
		index = 0
	}

	m.focusIndex = index

	var cmds []tea.Cmd

	if index == 0 {
		cmds = append(cmds, m.titleInput.Focus())
		m.titleInput.PromptStyle = focusedStyle
		m.titleInput.TextStyle = focusedStyle
	} else {
		m.titleInput.Blur()
		m.titleInput.PromptStyle = noStyle
		m.titleInput.TextStyle = noStyle
	}

	if index == 1 {
		cmds = append(cmds, m.contentArea.Focus())
	} else {
		m.contentArea.Blur()
	}

	return m, tea.Batch(cmds...)
}

func (m EditorModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds []tea.Cmd
		cmd  tea.Cmd
	)

	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)

	m.contentArea, cmd = m.contentArea.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m EditorModel) View() string {
	if m.quitting || m.Saved {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render(m.header) + "\n\n"
	s += blurredStyle.Render(" Title:") + "\n " + m.titleInput.View() + "\n\n"
	s += blurredStyle.Render(" Content:") + "\n" + m.contentArea.View() + "\n"

	saveButton := fmt.Sprintf("[ %s ]", blurredStyle.Render("Save"))
	if m.focusIndex == editorFieldCount {
		saveButton = focusedStyle.Render("[ Save ]")
	}

	s += fmt.Sprintf("\n %s", saveButton)

	if !m.CanSave() {
		s += blurredStyle.Render("  (a title is required)")
	}

	s += "\n\n"
	s += helpStyleConfigure.Render(" tab: next field • ctrl+s: save • esc: cancel")

	return s
}

// CanSave reports whether the form holds a savable entry.
func (m EditorModel) CanSave() bool {
	return strings.TrimSpace(m.titleInput.Value()) != ""
}

// GetTitle returns the trimmed entry title.
func (m EditorModel) GetTitle() string {
	return strings.TrimSpace(m.titleInput.Value())
}

// GetContent returns the composed entry content.
func (m EditorModel) GetContent() string {
	return m.contentArea.Value()
}

// Cancelled reports whether the form was dismissed without saving.
func (m EditorModel) Cancelled() bool {
	return !m.Saved
}

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
	"github.com/inovacc/jotr/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a journal entry",
	Long: `Edit an existing entry's title and content.

With an id (or unique id prefix) the entry opens directly; without one an
interactive picker is shown first. The configured external editor is used
when set, the builtin compose form otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	var entry model.Entry

	if len(args) == 1 {
		id, err := store.ResolveID(args[0])
		if err != nil {
			return err
		}

		entry, _ = store.Get(id)
	} else {
		picked, err := pickEntry("Edit which entry?")
		if err != nil || picked == nil {
			return err
		}

		entry = *picked
	}

	return editEntry(entry)
}

// editEntry runs the compose flow prefilled with the entry and applies the
// result.
func editEntry(entry model.Entry) error {
	title, content, ok, err := compose("Edit entry", entry.Title, entry.Content)
	if err != nil || !ok {
		return err
	}

	if err := store.Update(entry.ID, title, content); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", entry.ShortID())

	return nil
}

// pickEntry shows the single-select entry list and returns the chosen
// entry, nil when dismissed.
func pickEntry(title string) (*model.Entry, error) {
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("No entries yet. Create one with 'jotr new'.")

		return nil, nil
	}

	m := cli.NewEntryList(title, entries, cfg.DateFormat, false)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(cli.EntryListModel).GetSelectedEntry(), nil
}

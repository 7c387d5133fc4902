package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
	"github.com/inovacc/jotr/internal/model"
	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:     "rm [id...]",
	Aliases: []string{"remove"},
	Short:   "Delete journal entries",
	Long: `Delete one or more entries.

With ids (or unique id prefixes) the named entries are deleted after a
confirmation prompt. Without arguments an interactive multi-select list
is shown: space marks entries, enter confirms. All deletions in one call
are written as a single batch.`,
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runRm(cmd *cobra.Command, args []string) error {
	var ids []string

	if len(args) > 0 {
		for _, arg := range args {
			id, err := store.ResolveID(arg)
			if err != nil {
				return err
			}

			ids = append(ids, id)
		}
	} else {
		marked, err := pickEntriesToDelete()
		if err != nil {
			return err
		}

		ids = marked
	}

	if len(ids) == 0 {
		return nil
	}

	if !rmYes {
		prompt := fmt.Sprintf("Delete %d entr%s? [y/N]: ", len(ids), pluralY(len(ids)))
		if !promptConfirm(prompt) {
			fmt.Println("Cancelled.")

			return nil
		}
	}

	if err := store.DeleteMany(ids); err != nil {
		return err
	}

	fmt.Printf("Deleted %d entr%s\n", len(ids), pluralY(len(ids)))

	return nil
}

func pickEntriesToDelete() ([]string, error) {
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("No entries to delete.")

		return nil, nil
	}

	m := cli.NewEntryList("Delete entries (space marks; enter deletes marked, or highlighted when none)", entries, cfg.DateFormat, true)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	listModel := finalModel.(cli.EntryListModel)

	return deleteSelection(listModel.MarkedIDs(), listModel.GetSelectedEntry()), nil
}

// deleteSelection resolves a picker outcome to the ids to delete: the
// marked entries, or just the highlighted one when nothing was marked.
func deleteSelection(marked []string, selected *model.Entry) []string {
	if len(marked) > 0 {
		return marked
	}

	if selected != nil {
		return []string{selected.ID}
	}

	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}

	return "ies"
}

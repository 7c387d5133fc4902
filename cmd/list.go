package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	listPlain bool
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `Display journal entries newest first.

On a terminal this opens an interactive, filterable list; selecting an
entry prints it. When stdout is piped, or with --plain, a plain table is
printed instead.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Print a plain table instead of the interactive list")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Print at most N entries (plain output only)")
}

func runList(cmd *cobra.Command, _ []string) error {
	entries := store.Entries()

	if listPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		limit := len(entries)
		if listLimit > 0 && listLimit < limit {
			limit = listLimit
		}

		for _, e := range entries[:limit] {
			fmt.Println(plainLine(e, cfg.DateFormat))
		}

		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet. Create one with 'jotr new'.")

		return nil
	}

	m := cli.NewEntryList("Journal", entries, cfg.DateFormat, false)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	listModel := finalModel.(cli.EntryListModel)
	if selected := listModel.GetSelectedEntry(); selected != nil {
		printEntry(*selected)
	}

	return nil
}

package cmd

import (
	"fmt"

	"github.com/inovacc/jotr/internal/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one journal entry",
	Long: `Print a single entry in full.

The id may be abbreviated to any unique prefix of at least four
characters, as printed by 'jotr list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.ResolveID(args[0])
		if err != nil {
			return err
		}

		entry, ok := store.Get(id)
		if !ok {
			return fmt.Errorf("no entry with id %s", id)
		}

		printEntry(entry)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// printEntry writes one entry in full to stdout.
func printEntry(e model.Entry) {
	fmt.Printf("%s\n", e.Title)
	fmt.Printf("id: %s  created: %s  updated: %s\n",
		e.ShortID(),
		e.CreatedAt.Format(cfg.DateFormat),
		e.UpdatedAt.Format(cfg.DateFormat))

	if e.Content != "" {
		fmt.Printf("\n%s\n", e.Content)
	}
}

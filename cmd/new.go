package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	newTitle   string
	newMessage string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a journal entry",
	Long: `Create a new journal entry.

With --title the entry is created directly; --message supplies the content
and reads stdin when given '-'. Without flags an editor opens: the
configured external editor if one is set, the builtin compose form
otherwise.

Examples:
  jotr new                                 # Compose interactively
  jotr new -t "Standup" -m "Shipped the exporter."
  git log --oneline -5 | jotr new -t "This week" -m -`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Entry title")
	newCmd.Flags().StringVarP(&newMessage, "message", "m", "", "Entry content ('-' reads stdin)")
}

func runNew(cmd *cobra.Command, _ []string) error {
	// The store performs no trimming; a whitespace-only title falls
	// through to the compose flow like an absent one
	if title := strings.TrimSpace(newTitle); title != "" {
		content, err := resolveMessage(os.Stdin, newMessage)
		if err != nil {
			return err
		}

		entry, err := store.Create(title, content)
		if err != nil {
			return err
		}

		fmt.Printf("Created %s\n", entry.ShortID())

		return nil
	}

	if newMessage != "" {
		return fmt.Errorf("--message requires --title")
	}

	title, content, ok, err := compose("New entry", "", "")
	if err != nil || !ok {
		return err
	}

	entry, err := store.Create(title, content)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", entry.ShortID())

	return nil
}

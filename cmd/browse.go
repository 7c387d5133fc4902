package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
)

// runBrowse drives the interactive browse loop: one menu run per user
// decision, executed here, until the user quits.
func runBrowse() error {
	for {
		m := cli.NewMenu(store.Entries(), cfg.DateFormat)

		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menu := finalModel.(cli.MenuModel)

		switch menu.Action() {
		case cli.ActionQuit:
			return nil

		case cli.ActionNew:
			title, content, ok, err := compose("New entry", "", "")
			if err != nil {
				return err
			}

			if ok {
				if _, err := store.Create(title, content); err != nil {
					return err
				}
			}

		case cli.ActionView:
			if entry := menu.Selected(); entry != nil {
				printEntry(*entry)
				fmt.Println("\nPress Enter to continue...")
				_, _ = fmt.Scanln()
			}

		case cli.ActionEdit:
			if entry := menu.Selected(); entry != nil {
				if err := editEntry(*entry); err != nil {
					return err
				}
			}

		case cli.ActionDelete:
			entry := menu.Selected()
			if entry == nil {
				continue
			}

			if promptConfirm(fmt.Sprintf("Delete %q? [y/N]: ", entry.Title)) {
				if err := store.Delete(entry.ID); err != nil {
					return err
				}
			}
		}
	}
}

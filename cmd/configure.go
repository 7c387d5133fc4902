package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
	"github.com/inovacc/jotr/internal/encoding"
	"github.com/inovacc/jotr/internal/model"
	"github.com/spf13/cobra"
)

var (
	showConfig  bool
	resetConfig bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure jotr settings",
	Long:  `Interactively configure jotr settings such as the timestamp format, external editor, and export directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfig {
			return printConfig()
		}

		if resetConfig {
			def := model.DefaultConfig()

			if err := backend.SaveConfig(&def); err != nil {
				return err
			}

			fmt.Println("Configuration reset to defaults.")

			return nil
		}

		m, err := cli.NewConfigureModel(backend)
		if err != nil {
			return err
		}

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel := finalModel.(*cli.ConfigureModel)
		if configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
}

func printConfig() error {
	data, err := encoding.ToJSONIndent(cfg)
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/jotr/internal/application"
	"github.com/inovacc/jotr/internal/journal"
	"github.com/inovacc/jotr/internal/model"
	"github.com/inovacc/jotr/internal/storage"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	backend storage.Backend
	store   *journal.Store
	cfg     model.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "An offline terminal journal",
	Long: `Jotr is a single-user journal for the terminal. Entries live in a
local database in your config directory and never leave the machine.

Run 'jotr' without arguments to browse your journal interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		b, err := storage.Open()
		if err != nil {
			return fmt.Errorf("opening journal storage: %w", err)
		}

		backend = b
		store = journal.Open(backend, logger)

		c, err := backend.GetConfig()
		if err != nil {
			logger.Warn("reading config failed, using defaults", "error", err)

			def := model.DefaultConfig()
			c = &def
		}

		cfg = *c

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if backend == nil {
			return nil
		}

		return backend.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

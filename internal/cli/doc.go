// Package cli provides the terminal user interface components for jotr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
// The package provides several UI components:
//   - Menu: Main interactive menu for selecting operations
//   - EntryList: Filterable list of entries with single or multi select
//   - Editor: Compose form with a title input and a content textarea
//   - Configure: Configuration wizard with form navigation
//
// Components hold plain data handed to them by cmd; storage access stays
// in the command layer.
//
// # Styling
//
// Use Lipgloss for consistent styling across components. Common styles
// are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/jotr/internal/encoding"
	"github.com/inovacc/jotr/internal/journal"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to a JSON snapshot",
	Long: `Create a JSON snapshot of the journal.

The snapshot includes every entry plus the current configuration. A bare
output filename is placed in the configured export directory.

Examples:
  jotr export                     # Output to stdout
  jotr export -o backup.json      # Write to a file
  jotr export --no-config         # Entries only
  jotr export --compact           # No indentation`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().Bool("no-config", false, "Exclude configuration")
	exportCmd.Flags().Bool("compact", false, "Compact JSON output (no indentation)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	noConfig, _ := cmd.Flags().GetBool("no-config")
	compact, _ := cmd.Flags().GetBool("compact")

	opts := journal.DefaultSnapshotOptions()
	opts.IncludeConfig = !noConfig

	snapshot := store.CreateSnapshot(opts)
	pretty := !compact

	if outputPath == "" {
		return journal.WriteSnapshot(os.Stdout, snapshot, pretty)
	}

	if !filepath.IsAbs(outputPath) && filepath.Dir(outputPath) == "." && cfg.ExportDir != "" {
		outputPath = filepath.Join(cfg.ExportDir, outputPath)
	}

	if err := encoding.EnsureParentDir(outputPath); err != nil {
		return err
	}

	if err := journal.WriteSnapshotToFile(outputPath, snapshot, pretty); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stderr, "Snapshot written to %s (%d entries)\n",
		outputPath, len(snapshot.Entries))

	return nil
}

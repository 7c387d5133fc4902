package model

// Config holds user-tunable settings persisted alongside the journal.
type Config struct {
	// DateFormat is the Go reference layout used when rendering entry
	// timestamps in list and show output.
	DateFormat string `json:"date_format"`
	// Editor is the external editor command used to compose entry
	// content. When empty, $EDITOR is consulted at call time.
	Editor string `json:"editor"`
	// ExportDir is the default directory for snapshot exports. When
	// empty, exports go to the current working directory.
	ExportDir string `json:"export_dir"`
}

// DefaultConfig returns the configuration used until the user changes it.
func DefaultConfig() Config {
	return Config{
		DateFormat: "2006-01-02 15:04",
	}
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/jotr/internal/cli"
	"github.com/inovacc/jotr/internal/encoding"
	"github.com/inovacc/jotr/internal/model"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this entry? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// resolveMessage returns the entry content for a -m/--message value. The
// value "-" reads the whole of stdin instead.
func resolveMessage(stdin io.Reader, msg string) (string, error) {
	if msg != "-" {
		return msg, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading message from stdin: %w", err)
	}

	return string(data), nil
}

// plainLine formats one entry for non-interactive list output.
func plainLine(e model.Entry, layout string) string {
	return fmt.Sprintf("%s  %s  %s", e.ShortID(), e.CreatedAt.Format(layout), e.Title)
}

// parseCompose splits an externally composed file into title and content:
// the first line is the title, one leading blank line is dropped, the rest
// is content verbatim.
func parseCompose(data []byte) (title, content string) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	title, content, found := strings.Cut(text, "\n")
	title = strings.TrimSpace(title)

	if !found {
		return title, ""
	}

	content = strings.TrimPrefix(content, "\n")

	return title, strings.TrimRight(content, "\n")
}

// editorCommand resolves the external editor: configured first, $EDITOR
// second. Empty means the builtin compose form.
func editorCommand() string {
	if cfg.Editor != "" {
		return cfg.Editor
	}

	return os.Getenv("EDITOR")
}

// isEditorInstalled checks if the given editor command is available in PATH.
func isEditorInstalled(editor string) bool {
	_, err := exec.LookPath(editor)

	return err == nil
}

// compose collects a title and content pair, using the external editor
// when one is configured and installed, the builtin form otherwise. The
// third return is false when the user cancelled.
func compose(header, title, content string) (string, string, bool, error) {
	if editor := editorCommand(); editor != "" && isEditorInstalled(editor) {
		t, c, err := composeExternal(editor, title, content)
		if err != nil {
			return "", "", false, err
		}

		if t == "" {
			return "", "", false, fmt.Errorf("a title is required; entry not saved")
		}

		return t, c, true, nil
	}

	m := cli.NewEditorModel(header, title, content)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return "", "", false, err
	}

	ed := finalModel.(cli.EditorModel)
	if ed.Cancelled() {
		return "", "", false, nil
	}

	return ed.GetTitle(), ed.GetContent(), true, nil
}

// composeExternal runs the editor on a temp file seeded with the given
// title and content, waits for it to exit, and parses the result back.
func composeExternal(editor, title, content string) (string, string, error) {
	dir, err := os.MkdirTemp("", "jotr-compose-*")
	if err != nil {
		return "", "", fmt.Errorf("creating compose file: %w", err)
	}

	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "ENTRY.txt")
	seed := title + "\n"

	if content != "" {
		seed += "\n" + content + "\n"
	}

	if err := encoding.WriteFile(path, []byte(seed), 0600); err != nil {
		return "", "", err
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return "", "", fmt.Errorf("running editor %s: %w", editor, err)
	}

	data, err := encoding.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	newTitle, newContent := parseCompose(data)

	return newTitle, newContent, nil
}

package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/inovacc/jotr/internal/model"
)

func TestResolveMessage(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		msg      string
		expected string
	}{
		{
			name:     "literal message",
			stdin:    "ignored",
			msg:      "a note",
			expected: "a note",
		},
		{
			name:     "dash reads stdin",
			stdin:    "piped content\nsecond line\n",
			msg:      "-",
			expected: "piped content\nsecond line\n",
		},
		{
			name:     "empty message",
			stdin:    "ignored",
			msg:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := resolveMessage(strings.NewReader(tt.stdin), tt.msg)
			if err != nil {
				t.Fatalf("resolveMessage() error = %v", err)
			}

			if result != tt.expected {
				t.Errorf("resolveMessage(%q) = %q, want %q", tt.msg, result, tt.expected)
			}
		})
	}
}

func TestParseCompose(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTitle   string
		wantContent string
	}{
		{
			name:        "title and content",
			input:       "My day\n\nIt went fine.\n",
			wantTitle:   "My day",
			wantContent: "It went fine.",
		},
		{
			name:        "title only",
			input:       "Just a title\n",
			wantTitle:   "Just a title",
			wantContent: "",
		},
		{
			name:        "no trailing newline",
			input:       "Title",
			wantTitle:   "Title",
			wantContent: "",
		},
		{
			name:        "content without blank separator",
			input:       "Title\ncontent right away\n",
			wantTitle:   "Title",
			wantContent: "content right away",
		},
		{
			name:        "windows line endings",
			input:       "Title\r\n\r\nbody\r\n",
			wantTitle:   "Title",
			wantContent: "body",
		},
		{
			name:        "padded title is trimmed",
			input:       "  Title  \n\nbody\n",
			wantTitle:   "Title",
			wantContent: "body",
		},
		{
			name:        "empty file",
			input:       "",
			wantTitle:   "",
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content := parseCompose([]byte(tt.input))
			if title != tt.wantTitle {
				t.Errorf("parseCompose() title = %q, want %q", title, tt.wantTitle)
			}

			if content != tt.wantContent {
				t.Errorf("parseCompose() content = %q, want %q", content, tt.wantContent)
			}
		})
	}
}

func TestPlainLine(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	entry := model.Entry{
		ID:        "0123456789abcdef",
		Title:     "Morning pages",
		CreatedAt: created,
	}

	result := plainLine(entry, "2006-01-02 15:04")
	expected := "01234567  2026-03-14 09:30  Morning pages"

	if result != expected {
		t.Errorf("plainLine() = %q, want %q", result, expected)
	}
}

func TestPluralY(t *testing.T) {
	if got := pluralY(1); got != "y" {
		t.Errorf("pluralY(1) = %q, want %q", got, "y")
	}

	if got := pluralY(3); got != "ies" {
		t.Errorf("pluralY(3) = %q, want %q", got, "ies")
	}
}

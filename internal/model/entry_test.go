package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEntry_Fields(t *testing.T) {
	now := time.Now()

	entry := Entry{
		ID:        "abc-123-def",
		Title:     "Groceries",
		Content:   "milk, eggs, bread",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if entry.ID != "abc-123-def" {
		t.Errorf("ID = %q, want %q", entry.ID, "abc-123-def")
	}

	if entry.Title != "Groceries" {
		t.Errorf("Title = %q, want %q", entry.Title, "Groceries")
	}

	if entry.Content != "milk, eggs, bread" {
		t.Errorf("Content = %q, want %q", entry.Content, "milk, eggs, bread")
	}

	if !entry.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", entry.CreatedAt, now)
	}

	if !entry.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", entry.UpdatedAt, now)
	}
}

func TestEntry_ZeroValues(t *testing.T) {
	var entry Entry

	if entry.ID != "" {
		t.Errorf("zero Entry.ID = %q, want empty", entry.ID)
	}

	if entry.Title != "" {
		t.Errorf("zero Entry.Title = %q, want empty", entry.Title)
	}

	if entry.Content != "" {
		t.Errorf("zero Entry.Content = %q, want empty", entry.Content)
	}

	if !entry.CreatedAt.IsZero() {
		t.Errorf("zero Entry.CreatedAt = %v, want zero", entry.CreatedAt)
	}

	if !entry.UpdatedAt.IsZero() {
		t.Errorf("zero Entry.UpdatedAt = %v, want zero", entry.UpdatedAt)
	}
}

func TestEntry_Timestamps(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	entry := Entry{
		CreatedAt: created,
		UpdatedAt: updated,
	}

	// An entry is never updated before it was created
	if entry.CreatedAt.After(entry.UpdatedAt) {
		t.Error("CreatedAt should not be after UpdatedAt")
	}
}

func TestEntry_Preview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "short content",
			content: "short note",
			want:    "short note",
		},
		{
			name:    "content exactly at limit",
			content: strings.Repeat("a", PreviewLimit),
			want:    strings.Repeat("a", PreviewLimit),
		},
		{
			name:    "content one over limit",
			content: strings.Repeat("a", PreviewLimit+1),
			want:    strings.Repeat("a", PreviewLimit) + "...",
		},
		{
			name:    "long content",
			content: strings.Repeat("b", PreviewLimit*3),
			want:    strings.Repeat("b", PreviewLimit) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Entry{Content: tt.content}

			if got := entry.Preview(); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntry_PreviewMultibyte(t *testing.T) {
	// 101 runes of multibyte text must cut at 100 runes, not 100 bytes
	content := strings.Repeat("ñ", PreviewLimit+1)

	entry := Entry{Content: content}
	got := entry.Preview()

	want := strings.Repeat("ñ", PreviewLimit) + "..."
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}

	if strings.Contains(got, "�") {
		t.Error("Preview() split a multibyte character")
	}
}

func TestEntry_ShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "uuid",
			id:   "550e8400-e29b-41d4-a716-446655440000",
			want: "550e8400",
		},
		{
			name: "short id",
			id:   "abc",
			want: "abc",
		},
		{
			name: "empty id",
			id:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Entry{ID: tt.id}

			if got := entry.ShortID(); got != tt.want {
				t.Errorf("ShortID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntry_JSONMarshaling(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	original := Entry{
		ID:        "test-id-123",
		Title:     "Meeting notes",
		Content:   "Discussed the roadmap.\nFollow up next week.",
		CreatedAt: now,
		UpdatedAt: now.Add(time.Hour),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded Entry

	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded.ID != original.ID {
		t.Errorf("ID = %q, want %q", decoded.ID, original.ID)
	}

	if decoded.Title != original.Title {
		t.Errorf("Title = %q, want %q", decoded.Title, original.Title)
	}

	if decoded.Content != original.Content {
		t.Errorf("Content = %q, want %q", decoded.Content, original.Content)
	}

	if !decoded.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", decoded.CreatedAt, original.CreatedAt)
	}

	if !decoded.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", decoded.UpdatedAt, original.UpdatedAt)
	}
}

func TestEntry_JSONFields(t *testing.T) {
	entry := Entry{
		ID:      "uid-123",
		Title:   "Title here",
		Content: "Body here",
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	// Verify JSON field names
	jsonStr := string(data)

	expectedFields := []string{
		`"id":"uid-123"`,
		`"title":"Title here"`,
		`"content":"Body here"`,
		`"created_at"`,
		`"updated_at"`,
	}

	for _, field := range expectedFields {
		if !strings.Contains(jsonStr, field) {
			t.Errorf("JSON missing field %q in %s", field, jsonStr)
		}
	}
}

package model

import "time"

// PreviewLimit is the number of leading characters of Content shown in
// list views before the text is cut off.
const PreviewLimit = 100

// Entry represents a single journal entry.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview returns the first PreviewLimit characters of Content, with an
// ellipsis appended when the content is longer. Counting is by rune so
// multibyte text is never split mid-character.
func (e Entry) Preview() string {
	runes := []rune(e.Content)
	if len(runes) <= PreviewLimit {
		return e.Content
	}
	return string(runes[:PreviewLimit]) + "..."
}

// ShortID returns a truncated form of the entry id for display.
func (e Entry) ShortID() string {
	if len(e.ID) <= 8 {
		return e.ID
	}
	return e.ID[:8]
}

package models

import (
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode/utf8"
)

// Category tags a note and drives its badge color
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryAddress Category = "Address"
	CategoryPhone   Category = "Phone"
	CategoryEmail   Category = "Email"
	CategoryAccount Category = "Account"
	CategoryOther   Category = "Other"
)

const (
	DefaultTitle      = "Untitled"
	TimestampLayout   = "2006-01-02 15:04:05"
	PreviewRuneLimit  = 100
	previewEllipsis   = "..."
	newNoteTitleStart = "New note"
)

var categoryColors = map[Category]color.NRGBA{
	CategoryGeneral: {R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	CategoryAddress: {R: 0x21, G: 0x96, B: 0xF3, A: 0xFF},
	CategoryPhone:   {R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
	CategoryEmail:   {R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
	CategoryAccount: {R: 0xF4, G: 0x43, B: 0x36, A: 0xFF},
	CategoryOther:   {R: 0x60, G: 0x7D, B: 0x8B, A: 0xFF},
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryAddress,
		CategoryPhone,
		CategoryEmail,
		CategoryAccount,
		CategoryOther,
	}
}

// CategoryNames is Categories as plain strings, for selectors.
func CategoryNames() []string {
	categories := Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// IsValid reports whether c belongs to the fixed set.
func (c Category) IsValid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the badge color; unknown categories use the Other color.
func (c Category) Color() color.NRGBA {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return categoryColors[CategoryOther]
}

// Note is a single persisted sticky note
type Note struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  Category `json:"category"`
	CreatedAt string   `json:"created_at"`
}

// NewNoteTitle is the default title of the note created when count notes already exist.
func NewNoteTitle(count int) string {
	return fmt.Sprintf("%s %d", newNoteTitleStart, count+1)
}

// NewNote builds a note with default fields, stamped with now.
func NewNote(title string, now time.Time) Note {
	return Note{
		Title:     title,
		Content:   "",
		Category:  CategoryGeneral,
		CreatedAt: now.Format(TimestampLayout),
	}
}

// DisplayTitle is the title shown to the user.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return DefaultTitle
	}
	return n.Title
}

// DisplayCategory falls back to General when the record has no category.
func (n Note) DisplayCategory() Category {
	if n.Category == "" {
		return CategoryGeneral
	}
	return n.Category
}

// Preview truncates content to PreviewRuneLimit runes, adding an ellipsis when cut.
func (n Note) Preview() string {
	if utf8.RuneCountInString(n.Content) <= PreviewRuneLimit {
		return n.Content
	}
	runes := []rune(n.Content)
	return string(runes[:PreviewRuneLimit]) + previewEllipsis
}

// Edit applies edit buffers the way a committed card does: a blank title
// becomes DefaultTitle and content is trimmed. CreatedAt is kept.
func (n Note) Edit(title, content string, category Category) Note {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if category == "" {
		category = n.DisplayCategory()
	}
	n.Title = title
	n.Content = strings.TrimSpace(content)
	n.Category = category
	return n
}

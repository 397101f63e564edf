package templates_test

import (
	"testing"

	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/stretchr/testify/assert"
)

// TEST TYPE: Unit Test
// DEPENDENCIES: None (pure functions)

func TestInferNoteType(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{
			name:    "first segment names the type",
			relPath: "daily/monday.md",
			want:    "daily",
		},
		{
			name:    "only the first segment counts",
			relPath: "permanent/ideas/foo.md",
			want:    "permanent",
		},
		{
			name:    "note at the root gets the fallback",
			relPath: "foo.md",
			want:    "general",
		},
		{
			name:    "notes container gets the fallback",
			relPath: "notes/foo.md",
			want:    "general",
		},
		{
			name:    "examples container gets the fallback",
			relPath: "examples/foo.md",
			want:    "general",
		},
		{
			name:    "leading dot segment is cleaned away",
			relPath: "./reading/book.md",
			want:    "reading",
		},
		{
			name:    "empty path gets the fallback",
			relPath: "",
			want:    "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := templates.InferNoteType(tt.relPath, "general")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferNoteTypeCustomFallback(t *testing.T) {
	assert.Equal(t, "journal", templates.InferNoteType("foo.md", "journal"))
	assert.Equal(t, "daily", templates.InferNoteType("daily/foo.md", "journal"))
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		filename string
		want     string
	}{
		{
			name:     "heading on first line",
			content:  "# My Title\nSome content here.",
			filename: "my-note.md",
			want:     "My Title",
		},
		{
			name:     "heading after other lines",
			content:  "Some preamble.\n\n# Actual Title\nMore text.",
			filename: "my-note.md",
			want:     "Actual Title",
		},
		{
			name:     "first heading wins",
			content:  "# First\n\n# Second",
			filename: "my-note.md",
			want:     "First",
		},
		{
			name:     "heading is trimmed",
			content:  "#   Padded Title   \n",
			filename: "my-note.md",
			want:     "Padded Title",
		},
		{
			name:     "subheading does not count",
			content:  "## Not a Title\ntext",
			filename: "my-note.md",
			want:     "my note",
		},
		{
			name:     "hash without space does not count",
			content:  "#hashtag\ntext",
			filename: "my-note.md",
			want:     "my note",
		},
		{
			name:     "no heading falls back to filename",
			content:  "Just some text.",
			filename: "my-note.md",
			want:     "my note",
		},
		{
			name:     "fallback strips directories",
			content:  "",
			filename: "daily/weekly-review.md",
			want:     "weekly review",
		},
		{
			name:     "fallback keeps other separators",
			content:  "",
			filename: "meeting_notes.md",
			want:     "meeting_notes",
		},
		{
			name:     "crlf line endings",
			content:  "# Windows Title\r\nbody",
			filename: "my-note.md",
			want:     "Windows Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := templates.ExtractTitle(tt.content, tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalFrontmatterRoundtrip(t *testing.T) {
	front := noteFrontmatter{
		ID:      "abc-123",
		Title:   "My Note",
		Type:    "daily",
		Created: "2026-01-02T15:04:05Z",
	}

	data, err := marshalFrontmatter(front, "Body text.\n")
	require.NoError(t, err)

	gotFront, gotBody := splitFrontmatter(data)
	require.NotNil(t, gotFront)
	assert.Contains(t, string(gotFront), "id: abc-123")
	assert.Contains(t, string(gotFront), "title: My Note")
	assert.Equal(t, "Body text.\n", gotBody)
}

func TestSplitFrontmatterWithoutFence(t *testing.T) {
	front, body := splitFrontmatter([]byte("just a plain file\n"))

	assert.Nil(t, front)
	assert.Equal(t, "just a plain file\n", body)
}

func TestSplitFrontmatterUnterminated(t *testing.T) {
	input := "---\nkey: value\nno closing fence"
	front, body := splitFrontmatter([]byte(input))

	assert.Nil(t, front)
	assert.Equal(t, input, body)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "My Note",
			want:  "my-note",
		},
		{
			name:  "punctuation collapses",
			title: "Q3 Roadmap: Draft #2",
			want:  "q3-roadmap-draft-2",
		},
		{
			name:  "leading and trailing separators trimmed",
			title: "  (untracked)  ",
			want:  "untracked",
		},
		{
			name:  "unicode letters survive",
			title: "Überblick",
			want:  "überblick",
		},
		{
			name:  "empty title",
			title: "",
			want:  "untitled",
		},
		{
			name:  "only punctuation",
			title: "!!!",
			want:  "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.title))
		})
	}
}

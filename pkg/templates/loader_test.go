package templates_test

import (
	"testing"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/testutil"
	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFullTemplate(t *testing.T) (types.FS, *testutil.TestTemplate) {
	t.Helper()

	fsys := testutil.NewTestFS()
	tt := testutil.SetupTestTemplate(t, fsys, "/templates", "starter")
	tt.AddMetadata(t, `
name: Starter
description: A starter vault
initialNote: welcome.md
`)
	tt.AddNoteType(t, "daily.yml", `
name: daily
purpose: Daily journal entries
agent_instructions:
  - Keep entries short
  - Always date the entry
metadata_schema:
  fields:
    - name: mood
      type: string
      required: true
    - name: weather
      type: string
`)
	tt.AddNoteType(t, "reading.yml", `
name: reading
purpose: Book and article notes
`)
	tt.AddNote(t, "welcome.md", "# Welcome\nStart here.")
	tt.AddNote(t, "daily/monday.md", "# Monday\nFirst entry.")
	tt.AddNote(t, "reading/stack/deep-work.md", "Notes without a heading.")
	return fsys, tt
}

func TestLoadTemplate(t *testing.T) {
	fsys, _ := setupFullTemplate(t)

	tmpl, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "starter", tmpl.Metadata.ID)
	assert.Equal(t, "Starter", tmpl.Metadata.Name)
	assert.Equal(t, "/templates/starter", tmpl.Path)

	require.Len(t, tmpl.NoteTypes, 2)
	assert.Equal(t, "daily", tmpl.NoteTypes[0].Name)
	assert.Equal(t, []string{"Keep entries short", "Always date the entry"}, tmpl.NoteTypes[0].AgentInstructions)
	require.NotNil(t, tmpl.NoteTypes[0].MetadataSchema)
	require.Len(t, tmpl.NoteTypes[0].MetadataSchema.Fields, 2)
	assert.Equal(t, "mood", tmpl.NoteTypes[0].MetadataSchema.Fields[0].Name)
	assert.True(t, tmpl.NoteTypes[0].MetadataSchema.Fields[0].Required)
	assert.Equal(t, "reading", tmpl.NoteTypes[1].Name)
	assert.Nil(t, tmpl.NoteTypes[1].MetadataSchema)

	require.Len(t, tmpl.Notes, 3)
	byFilename := map[string]types.TemplateNote{}
	for _, n := range tmpl.Notes {
		byFilename[n.Filename] = n
	}

	welcome := byFilename["welcome.md"]
	assert.Equal(t, "Welcome", welcome.Title)
	assert.Equal(t, "general", welcome.Type)
	assert.Equal(t, "# Welcome\nStart here.", welcome.Content)

	monday := byFilename["daily/monday.md"]
	assert.Equal(t, "Monday", monday.Title)
	assert.Equal(t, "daily", monday.Type)

	// Nested note: type from the first segment, title from the filename
	deepWork := byFilename["reading/stack/deep-work.md"]
	assert.Equal(t, "deep work", deepWork.Title)
	assert.Equal(t, "reading", deepWork.Type)
}

func TestLoadTemplateMissingSubdirectories(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.SetupMinimalTemplate(t, fsys, "/templates", "bare")

	tmpl, err := templates.LoadTemplate("/templates", "bare", fsys, templates.LoadOptions{})
	require.NoError(t, err)

	// Templates are not required to define note types or notes
	assert.Empty(t, tmpl.NoteTypes)
	assert.Empty(t, tmpl.Notes)
}

func TestLoadTemplateMissingMetadataFails(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.SetupTestTemplate(t, fsys, "/templates", "no-metadata")

	_, err := templates.LoadTemplate("/templates", "no-metadata", fsys, templates.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestLoadTemplateSkipsInvalidNoteTypes(t *testing.T) {
	fsys := testutil.NewTestFS()
	tt := testutil.SetupMinimalTemplate(t, fsys, "/templates", "starter")
	tt.AddNoteType(t, "valid.yml", "name: valid\npurpose: A valid type\n")
	tt.AddNoteType(t, "no-name.yml", "purpose: Missing its name\n")
	tt.AddNoteType(t, "no-purpose.yml", "name: nameless-purpose\n")
	tt.AddNoteType(t, "garbage.yml", "]]]broken")
	tt.AddNoteType(t, "ignored.txt", "name: skipped\npurpose: Wrong extension\n")

	tmpl, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{})
	require.NoError(t, err)

	// Invalid definitions are dropped during loading, never surfaced as
	// hard errors
	require.Len(t, tmpl.NoteTypes, 1)
	assert.Equal(t, "valid", tmpl.NoteTypes[0].Name)
}

func TestLoadTemplateSkipsNonNoteFiles(t *testing.T) {
	fsys := testutil.NewTestFS()
	tt := testutil.SetupMinimalTemplate(t, fsys, "/templates", "starter")
	tt.AddNote(t, "keep.md", "# Keep")
	tt.AddNote(t, "skip.txt", "not a note")
	tt.AddNote(t, "assets/diagram.png", "binary-ish")

	tmpl, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{})
	require.NoError(t, err)

	require.Len(t, tmpl.Notes, 1)
	assert.Equal(t, "keep.md", tmpl.Notes[0].Filename)
}

func TestLoadTemplateCustomExtension(t *testing.T) {
	fsys := testutil.NewTestFS()
	tt := testutil.SetupMinimalTemplate(t, fsys, "/templates", "starter")
	tt.AddNote(t, "note.markdown", "# Long Extension")
	tt.AddNote(t, "note.md", "# Short Extension")

	tmpl, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{
		Extension: ".markdown",
	})
	require.NoError(t, err)

	require.Len(t, tmpl.Notes, 1)
	assert.Equal(t, "note.markdown", tmpl.Notes[0].Filename)
}

func TestLoadTemplateIsIdempotent(t *testing.T) {
	fsys, _ := setupFullTemplate(t)

	first, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{})
	require.NoError(t, err)
	second, err := templates.LoadTemplate("/templates", "starter", fsys, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

package testutil

import (
	"path"
	"testing"

	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS returns an in-memory types.FS. Tests build template trees
// and vaults on it without touching the disk.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// TestTemplate represents a test template with its directory structure
type TestTemplate struct {
	FS   types.FS
	Root string // Templates root directory
	ID   string // Template identifier (directory name)
	Dir  string // Full path to template directory
}

// SetupTestTemplate creates a template directory under root on the given
// filesystem. The metadata file is not written; use AddMetadata.
func SetupTestTemplate(t *testing.T, fsys types.FS, root, id string) *TestTemplate {
	t.Helper()

	dir := path.Join(root, id)
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	return &TestTemplate{
		FS:   fsys,
		Root: root,
		ID:   id,
		Dir:  dir,
	}
}

// AddFile adds a file to the template directory, creating parents as needed
func (tt *TestTemplate) AddFile(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := path.Join(tt.Dir, filename)
	require.NoError(t, tt.FS.MkdirAll(path.Dir(filePath), 0755))
	require.NoError(t, tt.FS.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

// AddMetadata adds a template.yml with the given YAML content
func (tt *TestTemplate) AddMetadata(t *testing.T, content string) {
	t.Helper()
	tt.AddFile(t, "template.yml", content)
}

// AddNoteType adds a note type definition under note-types/
func (tt *TestTemplate) AddNoteType(t *testing.T, filename, content string) {
	t.Helper()
	tt.AddFile(t, path.Join("note-types", filename), content)
}

// AddNote adds a markdown note under notes/
func (tt *TestTemplate) AddNote(t *testing.T, filename, content string) {
	t.Helper()
	tt.AddFile(t, path.Join("notes", filename), content)
}

// MinimalMetadata returns a valid template.yml body for the given name
func MinimalMetadata(name string) string {
	return "name: " + name + "\ndescription: A " + name + " template\n"
}

// SetupMinimalTemplate creates a template with a valid template.yml
func SetupMinimalTemplate(t *testing.T, fsys types.FS, root, id string) *TestTemplate {
	t.Helper()

	tt := SetupTestTemplate(t, fsys, root, id)
	tt.AddMetadata(t, MinimalMetadata(id))
	return tt
}

package types

import (
	"io/fs"
)

// FS is the filesystem interface required for flint-note operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// CreatedNote is what a note store reports back after creating a note.
type CreatedNote struct {
	// ID is the stable identifier assigned to the new note
	ID string `json:"id"`
}

// NoteTypeStore creates note type definitions in a vault.
type NoteTypeStore interface {
	// CreateNoteType registers a note type with the given name and
	// purpose. The schema may be nil when the type defines none.
	CreateNoteType(name, purpose string, agentInstructions []string, schema *MetadataSchema) error
}

// NoteStore creates notes in a vault.
type NoteStore interface {
	// CreateNote writes a note of the given type. When
	// enforceRequiredFields is true, metadata missing a field the
	// type's schema marks required is rejected.
	CreateNote(noteType, title, content string, metadata map[string]interface{}, enforceRequiredFields bool) (CreatedNote, error)
}

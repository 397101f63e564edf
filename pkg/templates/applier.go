package templates

import (
	"fmt"

	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// ApplyTemplate loads the template with the given id and provisions the
// target stores from it, in two ordered phases: every note type first,
// then every note, so a note can rely on its type already existing.
// Individual creation failures are recorded in the result and never
// abort the run; only a failed template load returns an error.
func ApplyTemplate(root, id string, fsys types.FS, typeStore types.NoteTypeStore, noteStore types.NoteStore, opts LoadOptions) (*types.ApplyResult, error) {
	logger := logging.GetLogger("templates.applier")

	tmpl, err := LoadTemplate(root, id, fsys, opts)
	if err != nil {
		return nil, err
	}

	result := &types.ApplyResult{Errors: []string{}}

	// Phase 1: note types
	for _, nt := range tmpl.NoteTypes {
		if err := typeStore.CreateNoteType(nt.Name, nt.Purpose, nt.AgentInstructions, nt.MetadataSchema); err != nil {
			logger.Warn().Err(err).Str("noteType", nt.Name).Msg("Note type creation failed")
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to create note type %s: %v", nt.Name, err))
			continue
		}
		result.NoteTypesCreated++
	}

	// Phase 2: notes. Required-field checks are disabled because a
	// starter note need not populate fields its type marks required.
	for _, note := range tmpl.Notes {
		created, err := noteStore.CreateNote(note.Type, note.Title, note.Content, map[string]interface{}{}, false)
		if err != nil {
			logger.Warn().Err(err).Str("note", note.Title).Msg("Note creation failed")
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to create note %s: %v", note.Title, err))
			continue
		}
		result.NotesCreated++

		// Filenames are unique, so the first match is the only match
		if tmpl.Metadata.InitialNote != "" && note.Filename == tmpl.Metadata.InitialNote && result.InitialNoteID == "" {
			result.InitialNoteID = created.ID
		}
	}

	logger.Info().
		Str("template", id).
		Int("noteTypesCreated", result.NoteTypesCreated).
		Int("notesCreated", result.NotesCreated).
		Int("errors", len(result.Errors)).
		Msg("Applied template")
	return result, nil
}

package templates

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// LoadTemplate loads a template's metadata, note type definitions, and
// bundled notes. A metadata failure aborts the load; a bad note type
// definition or unreadable note file is skipped with a warning so the
// rest of the template still loads.
func LoadTemplate(root, id string, fsys types.FS, opts LoadOptions) (*types.Template, error) {
	opts = opts.withDefaults()
	logger := logging.GetLogger("templates.loader")

	meta, err := LoadTemplateMetadata(root, id, fsys)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(root, id)
	tmpl := &types.Template{
		Metadata:  meta,
		Path:      dir,
		NoteTypes: loadNoteTypes(filepath.Join(dir, NoteTypesDirName), fsys),
		Notes:     loadNotes(filepath.Join(dir, NotesDirName), fsys, opts),
	}

	logger.Debug().
		Str("template", id).
		Int("noteTypes", len(tmpl.NoteTypes)).
		Int("notes", len(tmpl.Notes)).
		Msg("Loaded template")
	return tmpl, nil
}

// loadNoteTypes parses every definition file in dir, in enumeration
// order. A missing directory is an expected empty result. Definitions
// that fail to parse or lack a name or purpose are dropped here, during
// loading, rather than surfacing at application time.
func loadNoteTypes(dir string, fsys types.FS) []types.TemplateNoteType {
	logger := logging.GetLogger("templates.loader")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read note-types directory")
		}
		return nil
	}

	var noteTypes []types.TemplateNoteType
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext != ".yml" && ext != ".yaml" {
			continue
		}

		defPath := filepath.Join(dir, name)
		data, err := fsys.ReadFile(defPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", defPath).Msg("Cannot read note type definition, skipping")
			continue
		}

		var def types.TemplateNoteType
		if err := yaml.Unmarshal(data, &def); err != nil {
			logger.Warn().Err(err).Str("path", defPath).Msg("Malformed note type definition, skipping")
			continue
		}
		if def.Name == "" || def.Purpose == "" {
			logger.Warn().Str("path", defPath).Msg("Note type definition missing name or purpose, skipping")
			continue
		}

		noteTypes = append(noteTypes, def)
		logger.Trace().Str("noteType", def.Name).Msg("Loaded note type definition")
	}

	return noteTypes
}

// loadNotes collects every note file under dir, descending into
// subdirectories as they are enumerated. A missing directory is an
// expected empty result. An unreadable file or subdirectory is skipped
// with a warning; it never aborts the walk.
func loadNotes(dir string, fsys types.FS, opts LoadOptions) []types.TemplateNote {
	logger := logging.GetLogger("templates.loader")

	var notes []types.TemplateNote
	var walk func(subdir string)
	walk = func(subdir string) {
		entries, err := fsys.ReadDir(subdir)
		if err != nil {
			if subdir == dir && os.IsNotExist(err) {
				return
			}
			logger.Warn().Err(err).Str("dir", subdir).Msg("Cannot read notes directory, skipping")
			return
		}

		for _, entry := range entries {
			full := filepath.Join(subdir, entry.Name())
			if entry.IsDir() {
				walk(full)
				continue
			}
			if !strings.HasSuffix(entry.Name(), opts.Extension) {
				continue
			}

			data, err := fsys.ReadFile(full)
			if err != nil {
				logger.Warn().Err(err).Str("path", full).Msg("Cannot read note file, skipping")
				continue
			}

			rel, err := filepath.Rel(dir, full)
			if err != nil {
				logger.Warn().Err(err).Str("path", full).Msg("Cannot resolve note path, skipping")
				continue
			}
			rel = filepath.ToSlash(rel)

			content := string(data)
			notes = append(notes, types.TemplateNote{
				Filename: rel,
				Title:    ExtractTitle(content, rel),
				Content:  content,
				Type:     InferNoteType(rel, opts.FallbackType),
			})
			logger.Trace().Str("note", rel).Msg("Loaded note")
		}
	}
	walk(dir)

	return notes
}

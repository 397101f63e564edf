package show

import (
	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// ShowTemplateOptions defines the options for the ShowTemplate command.
type ShowTemplateOptions struct {
	// TemplatesRoot is the path to the directory holding the templates.
	TemplatesRoot string

	// TemplateID is the directory name of the template to show.
	TemplateID string

	// Extension overrides the note file extension (default ".md").
	Extension string

	// FallbackType overrides the default note type (default "general").
	FallbackType string

	// FS is the filesystem to read from. Nil means the OS filesystem.
	FS types.FS
}

// ShowTemplate loads one template in full, including its note type
// definitions and seed notes.
func ShowTemplate(opts ShowTemplateOptions) (*types.Template, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "ShowTemplate").Str("template", opts.TemplateID).Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	loadOpts := templates.LoadOptions{
		Extension:    opts.Extension,
		FallbackType: opts.FallbackType,
	}

	tmpl, err := templates.LoadTemplate(opts.TemplatesRoot, opts.TemplateID, fsys, loadOpts)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "ShowTemplate").
		Str("template", tmpl.Metadata.ID).
		Int("noteTypes", len(tmpl.NoteTypes)).
		Int("notes", len(tmpl.Notes)).
		Msg("Command finished")
	return tmpl, nil
}

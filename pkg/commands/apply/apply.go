package apply

import (
	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/disnet/flint-note-sub011/pkg/vault"
)

// ApplyTemplateOptions defines the options for the ApplyTemplate command.
type ApplyTemplateOptions struct {
	// TemplatesRoot is the path to the directory holding the templates.
	TemplatesRoot string

	// TemplateID is the directory name of the template to apply.
	TemplateID string

	// VaultPath is the vault directory the template is provisioned into.
	VaultPath string

	// Extension overrides the note file extension (default ".md").
	Extension string

	// FallbackType overrides the default note type (default "general").
	FallbackType string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// ApplyTemplate provisions a template into a vault: note types first,
// then notes, collecting per-item failures without aborting. The only
// error return is a template that cannot load at all.
func ApplyTemplate(opts ApplyTemplateOptions) (*types.ApplyTemplateResult, error) {
	log := logging.GetLogger("commands.apply")
	log.Debug().
		Str("command", "ApplyTemplate").
		Str("template", opts.TemplateID).
		Str("vault", opts.VaultPath).
		Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	typeStore := vault.NewNoteTypeManager(opts.VaultPath, fsys)
	noteStore := vault.NewNoteManager(opts.VaultPath, fsys)

	loadOpts := templates.LoadOptions{
		Extension:    opts.Extension,
		FallbackType: opts.FallbackType,
	}

	res, err := templates.ApplyTemplate(opts.TemplatesRoot, opts.TemplateID, fsys, typeStore, noteStore, loadOpts)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "ApplyTemplate").
		Str("template", opts.TemplateID).
		Int("noteTypesCreated", res.NoteTypesCreated).
		Int("notesCreated", res.NotesCreated).
		Int("errors", len(res.Errors)).
		Msg("Command finished")

	return &types.ApplyTemplateResult{
		TemplateID:  opts.TemplateID,
		VaultPath:   opts.VaultPath,
		ApplyResult: *res,
	}, nil
}

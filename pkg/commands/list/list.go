package list

import (
	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	// TemplatesRoot is the path to the directory holding the templates.
	TemplatesRoot string

	// Ignore holds glob patterns for directory names to skip. Nil keeps
	// the built-in defaults.
	Ignore []string

	// FS is the filesystem to read from. Nil means the OS filesystem.
	FS types.FS
}

// ListTemplates finds all loadable templates under the templates root.
// Templates that fail to load are logged and omitted, never fatal.
func ListTemplates(opts ListTemplatesOptions) (*types.ListTemplatesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListTemplates").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	loadOpts := templates.LoadOptions{Ignore: opts.Ignore}
	metas := templates.ListTemplates(opts.TemplatesRoot, fsys, loadOpts)

	result := &types.ListTemplatesResult{
		Templates: make([]types.TemplateInfo, 0, len(metas)),
	}

	for _, meta := range metas {
		tmpl, err := templates.LoadTemplate(opts.TemplatesRoot, meta.ID, fsys, loadOpts)
		if err != nil {
			log.Warn().
				Err(err).
				Str("template", meta.ID).
				Msg("Failed to load template, skipping")
			continue
		}

		result.Templates = append(result.Templates, types.TemplateInfo{
			ID:          meta.ID,
			Name:        meta.Name,
			Description: meta.Description,
			Icon:        meta.Icon,
			Author:      meta.Author,
			Version:     meta.Version,
			NoteTypes:   len(tmpl.NoteTypes),
			Notes:       len(tmpl.Notes),
		})
	}

	log.Info().Str("command", "ListTemplates").Int("templateCount", len(result.Templates)).Msg("Command finished")
	return result, nil
}

package templates

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// LoadTemplateMetadata reads and parses a template's metadata file. The
// returned ID always reflects the directory name, regardless of any id
// value inside the file.
func LoadTemplateMetadata(root, id string, fsys types.FS) (types.TemplateMetadata, error) {
	logger := logging.GetLogger("templates.metadata")
	metadataPath := filepath.Join(root, id, MetadataFileName)

	data, err := fsys.ReadFile(metadataPath)
	if err != nil {
		return types.TemplateMetadata{}, errors.Wrapf(err, errors.ErrTemplateNotFound, "template %q has no readable metadata", id).
			WithDetail("template", id).
			WithDetail("path", metadataPath)
	}

	var meta types.TemplateMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return types.TemplateMetadata{}, errors.Wrapf(err, errors.ErrTemplateMetadata, "template %q has malformed metadata", id).
			WithDetail("template", id).
			WithDetail("path", metadataPath)
	}

	// The directory name is authoritative for the template ID
	meta.ID = id

	logger.Trace().Str("template", id).Str("name", meta.Name).Msg("Loaded template metadata")
	return meta, nil
}

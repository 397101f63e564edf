package vault

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// DescriptionFileName is the definition file every note type directory
// carries. Its frontmatter holds the machine-readable definition; its
// body is the human-readable description.
const DescriptionFileName = "_description.md"

// validFieldTypes are the metadata field types a schema may declare
var validFieldTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"date":    true,
	"array":   true,
	"select":  true,
}

// NoteTypeManager creates and reads note type definitions in a vault.
// It satisfies types.NoteTypeStore.
type NoteTypeManager struct {
	fs   types.FS
	root string
}

// NewNoteTypeManager returns a manager for the vault at vaultPath
func NewNoteTypeManager(vaultPath string, fsys types.FS) *NoteTypeManager {
	return &NoteTypeManager{fs: fsys, root: vaultPath}
}

// CreateNoteType registers a note type: a directory named after the type
// holding a _description.md definition file. Fails when the type already
// exists or the schema is invalid.
func (m *NoteTypeManager) CreateNoteType(name, purpose string, agentInstructions []string, schema *types.MetadataSchema) error {
	logger := logging.GetLogger("vault.notetypes")

	if err := validateTypeName(name); err != nil {
		return err
	}
	normalized, err := normalizeSchema(schema)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSchemaInvalid, "invalid schema for note type %q", name)
	}

	descPath := filepath.Join(m.root, name, DescriptionFileName)
	if _, err := m.fs.Stat(descPath); err == nil {
		return errors.Newf(errors.ErrNoteTypeExists, "note type %q already exists", name).
			WithDetail("noteType", name)
	}

	def := types.TemplateNoteType{
		Name:              name,
		Purpose:           purpose,
		AgentInstructions: agentInstructions,
		MetadataSchema:    normalized,
	}

	data, err := marshalFrontmatter(def, buildDescriptionBody(def))
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot encode note type %q", name)
	}

	if err := m.fs.MkdirAll(filepath.Join(m.root, name), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create note type directory for %q", name).
			WithDetail("noteType", name)
	}
	if err := m.fs.WriteFile(descPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write note type definition for %q", name).
			WithDetail("path", descPath)
	}

	logger.Debug().Str("noteType", name).Msg("Created note type")
	return nil
}

// GetNoteType reads a note type definition. A directory without a
// parsable frontmatter block still counts as a type; only the directory
// itself being absent is an error.
func (m *NoteTypeManager) GetNoteType(name string) (types.TemplateNoteType, error) {
	descPath := filepath.Join(m.root, name, DescriptionFileName)

	data, err := m.fs.ReadFile(descPath)
	if err != nil {
		return types.TemplateNoteType{}, errors.Wrapf(err, errors.ErrNoteTypeUnknown, "note type %q does not exist", name).
			WithDetail("noteType", name)
	}

	front, _ := splitFrontmatter(data)
	if front == nil {
		return types.TemplateNoteType{Name: name}, nil
	}

	var def types.TemplateNoteType
	if err := yaml.Unmarshal(front, &def); err != nil {
		return types.TemplateNoteType{Name: name}, nil
	}
	if def.Name == "" {
		def.Name = name
	}
	return def, nil
}

// NoteTypeExists reports whether the vault defines the given note type
func (m *NoteTypeManager) NoteTypeExists(name string) bool {
	_, err := m.fs.Stat(filepath.Join(m.root, name, DescriptionFileName))
	return err == nil
}

// ListNoteTypes returns every note type defined in the vault, sorted by
// name. Directories without a definition file are not note types and
// are skipped.
func (m *NoteTypeManager) ListNoteTypes() ([]types.TemplateNoteType, error) {
	logger := logging.GetLogger("vault.notetypes")

	entries, err := m.fs.ReadDir(m.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVaultNotFound, "cannot read vault at %s", m.root).
			WithDetail("path", m.root)
	}

	var defs []types.TemplateNoteType
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !m.NoteTypeExists(entry.Name()) {
			continue
		}

		def, err := m.GetNoteType(entry.Name())
		if err != nil {
			logger.Warn().Err(err).Str("noteType", entry.Name()).Msg("Failed to read note type, skipping")
			continue
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs, nil
}

// validateTypeName rejects names that cannot serve as a directory name
func validateTypeName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "note type name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "note type name %q cannot contain path separators", name)
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return errors.Newf(errors.ErrInvalidInput, "note type name %q cannot start with a reserved prefix", name)
	}
	return nil
}

// normalizeSchema validates field definitions and fills in the default
// field type. A nil schema stays nil.
func normalizeSchema(schema *types.MetadataSchema) (*types.MetadataSchema, error) {
	if schema == nil {
		return nil, nil
	}

	normalized := &types.MetadataSchema{Fields: make([]types.SchemaField, 0, len(schema.Fields))}
	for _, f := range schema.Fields {
		if f.Name == "" {
			return nil, errors.New(errors.ErrSchemaInvalid, "schema field is missing a name")
		}
		if f.Type == "" {
			f.Type = "string"
		}
		if !validFieldTypes[f.Type] {
			return nil, errors.Newf(errors.ErrSchemaInvalid, "schema field %q has unknown type %q", f.Name, f.Type)
		}
		normalized.Fields = append(normalized.Fields, f)
	}
	return normalized, nil
}

// buildDescriptionBody renders the human-readable half of _description.md
func buildDescriptionBody(def types.TemplateNoteType) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n## Purpose\n\n%s\n", def.Name, def.Purpose)

	if len(def.AgentInstructions) > 0 {
		b.WriteString("\n## Agent Instructions\n\n")
		for _, instruction := range def.AgentInstructions {
			fmt.Fprintf(&b, "- %s\n", instruction)
		}
	}

	if def.MetadataSchema != nil && len(def.MetadataSchema.Fields) > 0 {
		b.WriteString("\n## Metadata Schema\n\n")
		for _, f := range def.MetadataSchema.Fields {
			required := ""
			if f.Required {
				required = " (required)"
			}
			fmt.Fprintf(&b, "- %s: %s%s\n", f.Name, f.Type, required)
		}
	}

	return b.String()
}

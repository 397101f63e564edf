package vault

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// NoteExtension is the extension notes are written with
const NoteExtension = ".md"

// noteFrontmatter is the YAML block written at the top of every note.
// Custom metadata fields are inlined after the fixed fields.
type noteFrontmatter struct {
	ID       string                 `yaml:"id"`
	Title    string                 `yaml:"title"`
	Type     string                 `yaml:"type"`
	Created  string                 `yaml:"created"`
	Metadata map[string]interface{} `yaml:",inline"`
}

// NoteManager creates notes in a vault. It satisfies types.NoteStore.
type NoteManager struct {
	fs        types.FS
	root      string
	noteTypes *NoteTypeManager
}

// NewNoteManager returns a manager for the vault at vaultPath
func NewNoteManager(vaultPath string, fsys types.FS) *NoteManager {
	return &NoteManager{
		fs:        fsys,
		root:      vaultPath,
		noteTypes: NewNoteTypeManager(vaultPath, fsys),
	}
}

// CreateNote writes a note of the given type as a frontmatter markdown
// file named after the slugified title. The note type must already
// exist. When enforceRequiredFields is true, metadata missing a field
// the type's schema marks required is rejected.
func (m *NoteManager) CreateNote(noteType, title, content string, metadata map[string]interface{}, enforceRequiredFields bool) (types.CreatedNote, error) {
	logger := logging.GetLogger("vault.notes")

	def, err := m.noteTypes.GetNoteType(noteType)
	if err != nil {
		return types.CreatedNote{}, err
	}

	if enforceRequiredFields {
		if err := checkRequiredFields(def.MetadataSchema, metadata); err != nil {
			return types.CreatedNote{}, err
		}
	}

	filename := slugify(title) + NoteExtension
	notePath := filepath.Join(m.root, noteType, filename)
	if _, err := m.fs.Stat(notePath); err == nil {
		return types.CreatedNote{}, errors.Newf(errors.ErrNoteExists, "note %q already exists in type %q", title, noteType).
			WithDetail("path", notePath)
	}

	front := noteFrontmatter{
		ID:       uuid.NewString(),
		Title:    title,
		Type:     noteType,
		Created:  time.Now().UTC().Format(time.RFC3339),
		Metadata: metadata,
	}

	data, err := marshalFrontmatter(front, content)
	if err != nil {
		return types.CreatedNote{}, errors.Wrapf(err, errors.ErrInternal, "cannot encode note %q", title)
	}
	if err := m.fs.WriteFile(notePath, data, 0644); err != nil {
		return types.CreatedNote{}, errors.Wrapf(err, errors.ErrFileWrite, "cannot write note %q", title).
			WithDetail("path", notePath)
	}

	logger.Debug().Str("note", title).Str("noteType", noteType).Str("id", front.ID).Msg("Created note")
	return types.CreatedNote{ID: front.ID}, nil
}

// checkRequiredFields rejects metadata missing any field the schema
// marks required
func checkRequiredFields(schema *types.MetadataSchema, metadata map[string]interface{}) error {
	var missing []string
	for _, field := range schema.RequiredFields() {
		if v, ok := metadata[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrFieldRequired, "missing required metadata fields: %s", strings.Join(missing, ", ")).
			WithDetail("fields", missing)
	}
	return nil
}

// slugify converts a title into a filesystem-safe filename stem
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled"
	}
	return slug
}

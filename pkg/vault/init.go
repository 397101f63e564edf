package vault

import (
	"path/filepath"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

const (
	// ConfigDirName is the per-vault directory holding vault-local
	// configuration.
	ConfigDirName = ".flint-note"

	// DefaultNoteTypeName is seeded into every new vault so notes
	// without a more specific type always have a home. Template notes
	// that sit at the template's notes root land here.
	DefaultNoteTypeName = "general"

	defaultNoteTypePurpose = "General notes that do not fit a more specific type"
)

// Initialize prepares a directory as a vault: creates it together with
// its config directory and seeds the default note type. Safe to call on
// an already initialized vault.
func Initialize(vaultPath string, fsys types.FS) error {
	if err := fsys.MkdirAll(filepath.Join(vaultPath, ConfigDirName), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to initialize vault %s", vaultPath)
	}

	manager := NewNoteTypeManager(vaultPath, fsys)
	if manager.NoteTypeExists(DefaultNoteTypeName) {
		return nil
	}
	return manager.CreateNoteType(DefaultNoteTypeName, defaultNoteTypePurpose, nil, nil)
}

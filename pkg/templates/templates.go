package templates

// Well-known names inside a template directory. These define the on-disk
// template layout and are not user-configurable.
const (
	// MetadataFileName is the metadata file every template must carry
	MetadataFileName = "template.yml"

	// NoteTypesDirName is the subdirectory holding note type definitions
	NoteTypesDirName = "note-types"

	// NotesDirName is the subdirectory holding starter notes
	NotesDirName = "notes"

	// DefaultNoteExtension is the extension bundled notes are read with
	DefaultNoteExtension = ".md"

	// DefaultNoteType is the fallback note type when none can be inferred
	DefaultNoteType = "general"
)

// DefaultIgnorePatterns are the directory name patterns skipped during
// discovery when no explicit patterns are configured. Underscore-prefixed
// directories are reserved for local scratch work.
var DefaultIgnorePatterns = []string{"_*"}

// LoadOptions configures template discovery and loading. The zero value
// selects the built-in defaults.
type LoadOptions struct {
	// Extension is the filename extension bundled notes are read with.
	// Defaults to DefaultNoteExtension.
	Extension string

	// FallbackType is the note type used when none can be inferred from
	// a note's location. Defaults to DefaultNoteType.
	FallbackType string

	// Ignore lists directory name patterns skipped during discovery, in
	// addition to hidden directories. Nil selects
	// DefaultIgnorePatterns; an empty slice disables pattern skipping.
	Ignore []string
}

// withDefaults fills unset options with the built-in defaults
func (o LoadOptions) withDefaults() LoadOptions {
	if o.Extension == "" {
		o.Extension = DefaultNoteExtension
	}
	if o.FallbackType == "" {
		o.FallbackType = DefaultNoteType
	}
	if o.Ignore == nil {
		o.Ignore = DefaultIgnorePatterns
	}
	return o
}

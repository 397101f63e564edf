package types

// TemplateMetadata describes a template as declared in its template.yml
// file. The ID always reflects the directory name on disk, regardless of
// any id field present in the file.
type TemplateMetadata struct {
	// ID is the template identifier (the directory name)
	ID string `yaml:"id" json:"id"`

	// Name is the human-readable template name
	Name string `yaml:"name" json:"name"`

	// Description explains what the template provides
	Description string `yaml:"description" json:"description"`

	// Icon is an optional display glyph (usually an emoji)
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`

	// Author is the optional template author
	Author string `yaml:"author,omitempty" json:"author,omitempty"`

	// Version is the optional template version string
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// InitialNote names the bundled note (by filename) that should be
	// opened first after the template is applied
	InitialNote string `yaml:"initialNote,omitempty" json:"initialNote,omitempty"`
}

// SchemaField describes a single metadata field a note type expects.
type SchemaField struct {
	Name        string      `yaml:"name" json:"name"`
	Type        string      `yaml:"type" json:"type"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool        `yaml:"required,omitempty" json:"required,omitempty"`
	Default     interface{} `yaml:"default,omitempty" json:"default,omitempty"`
}

// MetadataSchema is the set of metadata fields a note type defines.
type MetadataSchema struct {
	Fields []SchemaField `yaml:"fields" json:"fields"`
}

// RequiredFields returns the names of all fields marked required.
func (s *MetadataSchema) RequiredFields() []string {
	if s == nil {
		return nil
	}
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// TemplateNoteType is a note type definition bundled with a template,
// parsed from a YAML file under the template's note-types directory.
type TemplateNoteType struct {
	// Name is the note type name
	Name string `yaml:"name" json:"name"`

	// Purpose explains what the note type is for
	Purpose string `yaml:"purpose" json:"purpose"`

	// AgentInstructions are optional guidance lines for agents working
	// with notes of this type
	AgentInstructions []string `yaml:"agent_instructions,omitempty" json:"agentInstructions,omitempty"`

	// MetadataSchema optionally constrains the metadata of notes of
	// this type
	MetadataSchema *MetadataSchema `yaml:"metadata_schema,omitempty" json:"metadataSchema,omitempty"`
}

// TemplateNote is a note bundled with a template, read from a markdown
// file under the template's notes directory.
type TemplateNote struct {
	// Filename is the note's path relative to the notes directory,
	// using forward slashes
	Filename string `json:"filename"`

	// Title is the note title, taken from the first H1 heading or
	// derived from the filename
	Title string `json:"title"`

	// Content is the full markdown body of the note file
	Content string `json:"content"`

	// Type is the note type the note belongs to, inferred from the
	// note's subdirectory
	Type string `json:"type"`
}

// Template is a fully loaded template: its metadata plus every note
// type definition and note bundled with it.
type Template struct {
	// Metadata is the parsed template.yml content
	Metadata TemplateMetadata `json:"metadata"`

	// Path is the absolute path to the template directory
	Path string `json:"path"`

	// NoteTypes are the note type definitions, in filename order
	NoteTypes []TemplateNoteType `json:"noteTypes"`

	// Notes are the bundled notes, in walk order
	Notes []TemplateNote `json:"notes"`
}

// NoteTypeNames returns the names of all note types the template defines.
func (t *Template) NoteTypeNames() []string {
	names := make([]string, 0, len(t.NoteTypes))
	for _, nt := range t.NoteTypes {
		names = append(names, nt.Name)
	}
	return names
}

// InitialNote returns the bundled note matched by the metadata's
// initialNote filename, or nil if the metadata names none or the named
// note is not part of the template.
func (t *Template) InitialNote() *TemplateNote {
	if t.Metadata.InitialNote == "" {
		return nil
	}
	for i := range t.Notes {
		if t.Notes[i].Filename == t.Metadata.InitialNote {
			return &t.Notes[i]
		}
	}
	return nil
}

// Package config provides layered configuration for flint-note. Built-in
// defaults are embedded in the binary and can be overridden by the user
// config file and FLINT_NOTE_* environment variables, in that order.
package config

// TemplatesConfig holds template discovery configuration
type TemplatesConfig struct {
	// Dir overrides the templates root directory. Empty means resolve
	// via the environment or XDG defaults.
	Dir string `koanf:"dir" yaml:"dir" json:"dir"`

	// Ignore lists directory name patterns skipped during discovery,
	// in addition to hidden directories
	Ignore []string `koanf:"ignore" yaml:"ignore" json:"ignore"`
}

// NotesConfig holds note handling configuration
type NotesConfig struct {
	// Extension is the file extension bundled notes are read with
	Extension string `koanf:"extension" yaml:"extension" json:"extension"`

	// DefaultType is the note type used when none can be inferred
	DefaultType string `koanf:"default_type" yaml:"defaultType" json:"defaultType"`
}

// VaultConfig holds vault resolution configuration
type VaultConfig struct {
	// Path overrides the active vault path. Empty means resolve via
	// the vault registry.
	Path string `koanf:"path" yaml:"path" json:"path"`
}

// SuggestionsConfig holds contextual suggestion configuration
type SuggestionsConfig struct {
	// Enabled controls whether suggestions are surfaced after operations
	Enabled bool `koanf:"enabled" yaml:"enabled" json:"enabled"`
}

// Config is the root configuration structure
type Config struct {
	Templates   TemplatesConfig   `koanf:"templates" yaml:"templates" json:"templates"`
	Notes       NotesConfig       `koanf:"notes" yaml:"notes" json:"notes"`
	Vault       VaultConfig       `koanf:"vault" yaml:"vault" json:"vault"`
	Suggestions SuggestionsConfig `koanf:"suggestions" yaml:"suggestions" json:"suggestions"`
}

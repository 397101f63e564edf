// Package vault implements flint-note's on-disk vault storage.
//
// A vault is a plain directory of markdown files. Each note type owns a
// subdirectory carrying a _description.md definition file, and each note
// is a markdown file with YAML frontmatter inside its type's directory.
// The package provides:
//
//   - NoteTypeManager: creates and reads note type definitions
//   - NoteManager: creates notes, with optional required-field checks
//   - Registry: the named-vault registry backed by vaults.toml
//
// NoteTypeManager and NoteManager satisfy the types.NoteTypeStore and
// types.NoteStore interfaces the template applier provisions through.
package vault

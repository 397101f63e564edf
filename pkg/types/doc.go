// Package types defines the core types and interfaces used throughout
// flint-note. This includes the Template aggregate and its parts, result
// types for commands, and the FS, NoteStore, and NoteTypeStore interfaces.
package types

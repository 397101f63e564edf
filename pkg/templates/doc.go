// Package templates provides functionality for discovering, loading, and
// applying vault templates within the flint-note system.
//
// A template is a directory containing metadata, note type definitions,
// and starter notes that together bootstrap a new vault. This package
// handles:
//
//   - Template discovery (one corrupt template never hides the others)
//   - Metadata, note type, and note loading with per-file fault isolation
//   - Note type and title inference for bundled notes
//   - Two-phase vault provisioning: note types first, then notes
//
// The package implements the core template pipeline that feeds into the
// flint-note vault commands.
package templates

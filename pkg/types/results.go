package types

// ApplyResult summarizes one template application run. Per-item
// failures are collected in Errors rather than aborting the run.
type ApplyResult struct {
	// NoteTypesCreated counts note type definitions created successfully
	NoteTypesCreated int `json:"noteTypesCreated"`

	// NotesCreated counts notes created successfully
	NotesCreated int `json:"notesCreated"`

	// Errors holds one message per item that failed
	Errors []string `json:"errors"`

	// InitialNoteID is the store-assigned ID of the template's initial
	// note, when the template declares one and it was created
	InitialNoteID string `json:"initialNoteId,omitempty"`
}

// ListTemplatesResult holds the result of the 'templates list' command.
type ListTemplatesResult struct {
	Templates []TemplateInfo `json:"templates"`
}

// TemplateInfo contains summary information about a single template.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Author      string `json:"author,omitempty"`
	Version     string `json:"version,omitempty"`
	NoteTypes   int    `json:"noteTypes"`
	Notes       int    `json:"notes"`
}

// ApplyTemplateResult holds the result of the 'templates apply' command.
type ApplyTemplateResult struct {
	TemplateID string `json:"templateId"`
	VaultPath  string `json:"vaultPath"`
	ApplyResult
}

// VaultInfo contains summary information about a registered vault.
type VaultInfo struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Current bool   `json:"current"`
}

// ListVaultsResult holds the result of the 'vault list' command.
type ListVaultsResult struct {
	Vaults []VaultInfo `json:"vaults"`
}

// InitVaultResult holds the result of the 'vault init' command.
type InitVaultResult struct {
	Name    string               `json:"name"`
	Path    string               `json:"path"`
	Applied *ApplyTemplateResult `json:"applied,omitempty"`
}

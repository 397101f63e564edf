// Package commands provides the high-level command implementations that
// sit between the CLI and the template pipeline.
//
// Each command is implemented in its own subdirectory:
//   - list/   - ListTemplates command
//   - show/   - ShowTemplate command
//   - apply/  - ApplyTemplate command
//   - vaults/ - InitVault, UseVault and ListVaults commands
//
// This file re-exports the command functions so callers can depend on a
// single import.
package commands

import (
	"github.com/disnet/flint-note-sub011/pkg/commands/apply"
	"github.com/disnet/flint-note-sub011/pkg/commands/list"
	"github.com/disnet/flint-note-sub011/pkg/commands/show"
	"github.com/disnet/flint-note-sub011/pkg/commands/vaults"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// ListTemplates finds all loadable templates under the templates root.
type ListTemplatesOptions = list.ListTemplatesOptions

func ListTemplates(opts ListTemplatesOptions) (*types.ListTemplatesResult, error) {
	return list.ListTemplates(opts)
}

// ShowTemplate loads one template in full.
type ShowTemplateOptions = show.ShowTemplateOptions

func ShowTemplate(opts ShowTemplateOptions) (*types.Template, error) {
	return show.ShowTemplate(opts)
}

// ApplyTemplate provisions a template into a vault.
type ApplyTemplateOptions = apply.ApplyTemplateOptions

func ApplyTemplate(opts ApplyTemplateOptions) (*types.ApplyTemplateResult, error) {
	return apply.ApplyTemplate(opts)
}

// InitVault creates and registers a new vault.
type InitVaultOptions = vaults.InitVaultOptions

func InitVault(opts InitVaultOptions) (*types.InitVaultResult, error) {
	return vaults.InitVault(opts)
}

// UseVault marks a registered vault as the current one.
type UseVaultOptions = vaults.UseVaultOptions

func UseVault(opts UseVaultOptions) (*types.VaultInfo, error) {
	return vaults.UseVault(opts)
}

// ListVaults returns every registered vault.
type ListVaultsOptions = vaults.ListVaultsOptions

func ListVaults(opts ListVaultsOptions) (*types.ListVaultsResult, error) {
	return vaults.ListVaults(opts)
}

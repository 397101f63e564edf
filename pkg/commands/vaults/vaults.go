// Package vaults implements the vault registry commands: registering a
// new vault (optionally provisioning it from a template), switching the
// current vault, and listing the registered ones.
package vaults

import (
	"github.com/disnet/flint-note-sub011/pkg/commands/apply"
	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/disnet/flint-note-sub011/pkg/vault"
)

// InitVaultOptions defines the options for the InitVault command.
type InitVaultOptions struct {
	// Name is the registry key for the new vault.
	Name string

	// Path is the vault directory, created if absent.
	Path string

	// RegistryPath is the location of the vaults.toml registry file.
	RegistryPath string

	// TemplateID optionally names a template to apply into the new vault.
	TemplateID string

	// TemplatesRoot is required when TemplateID is set.
	TemplatesRoot string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// InitVault creates and registers a new vault. When a template is
// requested it is validated before anything is written, so a bad
// template id leaves no partial state behind.
func InitVault(opts InitVaultOptions) (*types.InitVaultResult, error) {
	log := logging.GetLogger("commands.vaults")
	log.Debug().
		Str("command", "InitVault").
		Str("name", opts.Name).
		Str("path", opts.Path).
		Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.TemplateID != "" {
		if _, err := templates.LoadTemplate(opts.TemplatesRoot, opts.TemplateID, fsys, templates.LoadOptions{}); err != nil {
			return nil, err
		}
	}

	registry, err := vault.LoadRegistry(opts.RegistryPath, fsys)
	if err != nil {
		return nil, err
	}
	if err := registry.Add(opts.Name, opts.Path); err != nil {
		return nil, err
	}

	if err := vault.Initialize(opts.Path, fsys); err != nil {
		return nil, err
	}
	if err := registry.Save(opts.RegistryPath, fsys); err != nil {
		return nil, err
	}

	result := &types.InitVaultResult{
		Name: opts.Name,
		Path: opts.Path,
	}

	if opts.TemplateID != "" {
		applied, err := apply.ApplyTemplate(apply.ApplyTemplateOptions{
			TemplatesRoot: opts.TemplatesRoot,
			TemplateID:    opts.TemplateID,
			VaultPath:     opts.Path,
			FS:            fsys,
		})
		if err != nil {
			return nil, err
		}
		result.Applied = applied
	}

	log.Info().
		Str("command", "InitVault").
		Str("name", opts.Name).
		Bool("templateApplied", result.Applied != nil).
		Msg("Command finished")
	return result, nil
}

// UseVaultOptions defines the options for the UseVault command.
type UseVaultOptions struct {
	// Name is the registry key of the vault to make current.
	Name string

	// RegistryPath is the location of the vaults.toml registry file.
	RegistryPath string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// UseVault marks a registered vault as the current one.
func UseVault(opts UseVaultOptions) (*types.VaultInfo, error) {
	log := logging.GetLogger("commands.vaults")
	log.Debug().Str("command", "UseVault").Str("name", opts.Name).Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	registry, err := vault.LoadRegistry(opts.RegistryPath, fsys)
	if err != nil {
		return nil, err
	}
	if err := registry.Use(opts.Name); err != nil {
		return nil, err
	}
	if err := registry.Save(opts.RegistryPath, fsys); err != nil {
		return nil, err
	}

	entry, err := registry.Resolve(opts.Name)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "UseVault").Str("name", opts.Name).Msg("Command finished")
	return &types.VaultInfo{Name: entry.Name, Path: entry.Path, Current: true}, nil
}

// ListVaultsOptions defines the options for the ListVaults command.
type ListVaultsOptions struct {
	// RegistryPath is the location of the vaults.toml registry file.
	RegistryPath string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// ListVaults returns every registered vault, marking the current one.
func ListVaults(opts ListVaultsOptions) (*types.ListVaultsResult, error) {
	log := logging.GetLogger("commands.vaults")
	log.Debug().Str("command", "ListVaults").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	registry, err := vault.LoadRegistry(opts.RegistryPath, fsys)
	if err != nil {
		return nil, err
	}

	result := &types.ListVaultsResult{Vaults: registry.List()}

	log.Info().Str("command", "ListVaults").Int("vaultCount", len(result.Vaults)).Msg("Command finished")
	return result, nil
}

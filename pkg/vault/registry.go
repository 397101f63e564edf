package vault

import (
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/paths"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// VaultEntry is one registered vault
type VaultEntry struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Registry tracks the vaults flint-note knows about and which one is
// current. It is persisted as a TOML file in the config directory.
type Registry struct {
	Current string                `toml:"current"`
	Vaults  map[string]VaultEntry `toml:"vaults"`
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{Vaults: map[string]VaultEntry{}}
}

// LoadRegistry reads the registry file. A missing file yields an empty
// registry, not an error.
func LoadRegistry(path string, fsys types.FS) (*Registry, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRegistry(), nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read vault registry").
			WithDetail("path", path)
	}

	var reg Registry
	if err := toml.Unmarshal(data, &reg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "malformed vault registry").
			WithDetail("path", path)
	}
	if reg.Vaults == nil {
		reg.Vaults = map[string]VaultEntry{}
	}
	return &reg, nil
}

// Save writes the registry, creating parent directories as needed
func (r *Registry) Save(path string, fsys types.FS) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode vault registry")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create config directory").
			WithDetail("path", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write vault registry").
			WithDetail("path", path)
	}

	logger := logging.GetLogger("vault.registry")
	logger.Debug().Str("path", path).Msg("Saved vault registry")
	return nil
}

// Add registers a vault under a unique name. The first vault added
// becomes the current one.
func (r *Registry) Add(name, vaultPath string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "vault name cannot be empty")
	}
	if _, ok := r.Vaults[name]; ok {
		return errors.Newf(errors.ErrVaultExists, "vault %q is already registered", name).
			WithDetail("vault", name)
	}

	r.Vaults[name] = VaultEntry{Name: name, Path: vaultPath}
	if r.Current == "" {
		r.Current = name
	}
	return nil
}

// Use marks a registered vault as current
func (r *Registry) Use(name string) error {
	if _, ok := r.Vaults[name]; !ok {
		return errors.Newf(errors.ErrVaultNotFound, "vault %q is not registered", name).
			WithDetail("vault", name)
	}
	r.Current = name
	return nil
}

// Resolve returns a registered vault with its path expanded. An empty
// name resolves the current vault.
func (r *Registry) Resolve(name string) (VaultEntry, error) {
	if name == "" {
		name = r.Current
	}
	if name == "" {
		return VaultEntry{}, errors.New(errors.ErrVaultNotFound, "no vault is registered")
	}

	entry, ok := r.Vaults[name]
	if !ok {
		return VaultEntry{}, errors.Newf(errors.ErrVaultNotFound, "vault %q is not registered", name).
			WithDetail("vault", name)
	}

	entry.Path = paths.ExpandHome(entry.Path)
	return entry, nil
}

// List returns every registered vault sorted by name, flagging the
// current one
func (r *Registry) List() []types.VaultInfo {
	infos := make([]types.VaultInfo, 0, len(r.Vaults))
	for name, entry := range r.Vaults {
		infos = append(infos, types.VaultInfo{
			Name:    name,
			Path:    entry.Path,
			Current: name == r.Current,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

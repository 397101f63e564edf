// Package paths provides centralized path handling for flint-note.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/disnet/flint-note-sub011/pkg/errors"
)

// Environment variable names
const (
	// EnvTemplatesDir is the primary environment variable for the templates location
	EnvTemplatesDir = "FLINT_NOTE_TEMPLATES_DIR"

	// EnvDataDir overrides the XDG data directory for flint-note
	EnvDataDir = "FLINT_NOTE_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for flint-note
	EnvConfigDir = "FLINT_NOTE_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for flint-note-specific files
	AppDirName = "flint-note"

	// TemplatesDirName is the subdirectory for templates
	TemplatesDirName = "templates"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.yml"

	// RegistryFileName is the name of the vault registry file
	RegistryFileName = "vaults.toml"

	// LogFileName is the name of the log file
	LogFileName = "flint-note.log"
)

// Paths provides centralized path management for flint-note
type Paths interface {
	TemplatesRoot() string
	UsedFallback() bool
	TemplatePath(templateID string) string
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	RegistryPath() string
	LogFilePath() string
}

type paths struct {
	templatesRoot string

	xdgData   string
	xdgConfig string
	xdgState  string

	// set when TemplatesRoot came from the cwd rather than an
	// explicit or XDG location, so callers can warn
	usedFallback bool
}

// New creates a Paths instance rooted at templatesRoot. An empty
// templatesRoot is resolved from the environment and XDG defaults.
func New(templatesRoot string) (Paths, error) {
	p := &paths{
		xdgData:   overrideOr(EnvDataDir, filepath.Join(xdg.DataHome, AppDirName)),
		xdgConfig: overrideOr(EnvConfigDir, filepath.Join(xdg.ConfigHome, AppDirName)),
		xdgState:  stateDir(),
	}

	if templatesRoot == "" {
		root, usedFallback, err := findTemplatesRoot()
		if err != nil {
			return nil, err
		}
		p.templatesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.templatesRoot = expandHome(templatesRoot)
	}

	// Relative roots make downstream joins ambiguous
	absRoot, err := filepath.Abs(p.templatesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for templates root")
	}
	p.templatesRoot = absRoot

	return p, nil
}

// overrideOr returns the expanded value of the env variable when set,
// otherwise the default.
func overrideOr(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return expandHome(v)
	}
	return def
}

// stateDir resolves the XDG state directory. The xdg package has no
// StateHome accessor, so the variable is read directly.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// findTemplatesRoot resolves the templates root, in priority order:
// FLINT_NOTE_TEMPLATES_DIR, then <XDG_DATA_HOME>/flint-note/templates
// when it exists, then ./templates when working from a checkout. The
// bool reports whether the cwd fallback was taken.
func findTemplatesRoot() (string, bool, error) {
	if root := os.Getenv(EnvTemplatesDir); root != "" {
		return expandHome(root), false, nil
	}

	xdgRoot := filepath.Join(xdg.DataHome, AppDirName, TemplatesDirName)
	if _, err := os.Stat(xdgRoot); err == nil {
		return xdgRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	devRoot := filepath.Join(cwd, TemplatesDirName)
	if _, err := os.Stat(devRoot); err == nil {
		return devRoot, true, nil
	}

	// Neither location exists yet; stick with the XDG default. The
	// locator treats a missing root as zero templates.
	return xdgRoot, false, nil
}

// expandHome replaces a leading ~ with the user's home directory.
// The ~user form is left untouched.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	rest := path[1:]
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		if homeDir = os.Getenv(EnvHome); homeDir == "" {
			return path
		}
	}
	if rest == "" {
		return homeDir
	}
	return filepath.Join(homeDir, rest[1:])
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// TemplatesRoot returns the directory templates are discovered in
func (p *paths) TemplatesRoot() string {
	return p.templatesRoot
}

// UsedFallback reports whether the cwd fallback supplied the templates root
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// TemplatePath returns the path to a specific template
func (p *paths) TemplatePath(templateID string) string {
	return filepath.Join(p.templatesRoot, templateID)
}

// DataDir returns the XDG data directory for flint-note
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for flint-note
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for flint-note
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// RegistryPath returns the path to the vault registry file
func (p *paths) RegistryPath() string {
	return filepath.Join(p.xdgConfig, RegistryFileName)
}

// LogFilePath returns the path to the flint-note log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

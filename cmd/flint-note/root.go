// Package flintnote builds the flint-note cobra command tree.
package flintnote

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/disnet/flint-note-sub011/internal/version"
	"github.com/disnet/flint-note-sub011/pkg/config"
	"github.com/disnet/flint-note-sub011/pkg/filesystem"
	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/paths"
	"github.com/disnet/flint-note-sub011/pkg/style"
	"github.com/disnet/flint-note-sub011/pkg/vault"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity    int
		templatesDir string
		formatName   string
		noColor      bool
	)

	rootCmd := &cobra.Command{
		Use:     "flint-note",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logging level follows the -v count
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the invocation as wrong
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", MsgFlagTemplatesDir)
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newVaultCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// cmdEnv carries what every command run needs: resolved paths, the
// effective config, and the renderer for the selected output format.
type cmdEnv struct {
	paths    paths.Paths
	cfg      *config.Config
	format   style.Format
	renderer style.Renderer
}

// newCmdEnv resolves paths and configuration from the persistent flags.
// Precedence for the templates root: --templates-dir flag, then the
// FLINT_NOTE_TEMPLATES_DIR environment variable, then the config file,
// then the XDG default.
func newCmdEnv(cmd *cobra.Command) (*cmdEnv, error) {
	flags := cmd.Root().PersistentFlags()
	templatesDir, _ := flags.GetString("templates-dir")
	formatName, _ := flags.GetString("format")
	noColor, _ := flags.GetBool("no-color")

	p, err := paths.New(templatesDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	// The config file can point templates elsewhere when neither the
	// flag nor the environment did
	if templatesDir == "" && cfg.Templates.Dir != "" && os.Getenv(paths.EnvTemplatesDir) == "" {
		p, err = paths.New(cfg.Templates.Dir)
		if err != nil {
			return nil, fmt.Errorf(MsgErrInitPaths, err)
		}
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, paths.EnvTemplatesDir)
	}

	format, err := style.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	format = format.Resolve(os.Stdout)
	if noColor && format == style.FormatTerminal {
		format = style.FormatText
	}

	return &cmdEnv{
		paths:    p,
		cfg:      cfg,
		format:   format,
		renderer: style.NewRenderer(format),
	}, nil
}

// printJSON writes a command result as indented JSON to stdout
func (e *cmdEnv) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// resolveVaultPath returns the directory of the vault a command should
// operate on. An explicit name is looked up in the registry; without
// one, the config override wins, then the registry's current vault.
func (e *cmdEnv) resolveVaultPath(name string) (string, error) {
	if name == "" && e.cfg.Vault.Path != "" {
		return paths.ExpandHome(e.cfg.Vault.Path), nil
	}

	registry, err := vault.LoadRegistry(e.paths.RegistryPath(), filesystem.NewOS())
	if err != nil {
		return "", err
	}
	entry, err := registry.Resolve(name)
	if err != nil {
		if name == "" {
			return "", fmt.Errorf(MsgErrNoVault)
		}
		return "", err
	}
	return entry.Path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flint-note version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// completionGenerators maps shell names to their cobra generators.
var completionGenerators = map[string]func(*cobra.Command) error{
	"bash": func(c *cobra.Command) error { return c.GenBashCompletion(os.Stdout) },
	"zsh":  func(c *cobra.Command) error { return c.GenZshCompletion(os.Stdout) },
	"fish": func(c *cobra.Command) error { return c.GenFishCompletion(os.Stdout, true) },
	"powershell": func(c *cobra.Command) error {
		return c.GenPowerShellCompletionWithDesc(os.Stdout)
	},
}

func newCompletionCmd() *cobra.Command {
	shells := make([]string, 0, len(completionGenerators))
	for shell := range completionGenerators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root())
		},
	}
}

package flintnote

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/disnet/flint-note-sub011/pkg/commands"
	"github.com/disnet/flint-note-sub011/pkg/paths"
	"github.com/disnet/flint-note-sub011/pkg/style"
	"github.com/disnet/flint-note-sub011/pkg/suggest"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vault",
		Short:   MsgVaultShort,
		GroupID: "core",
		// Bare "vault" behaves like "vault list"
		RunE: runVaultList,
	}

	cmd.AddCommand(newVaultListCmd())
	cmd.AddCommand(newVaultUseCmd())
	cmd.AddCommand(newVaultInitCmd())

	return cmd
}

func newVaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgVaultListShort,
		RunE:  runVaultList,
	}
}

func runVaultList(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv(cmd)
	if err != nil {
		return err
	}

	result, err := commands.ListVaults(commands.ListVaultsOptions{
		RegistryPath: env.paths.RegistryPath(),
	})
	if err != nil {
		return err
	}

	if env.format == style.FormatJSON {
		return env.printJSON(result)
	}
	fmt.Println(env.renderer.RenderVaultList(result.Vaults))
	return nil
}

// vaultNameCompletion provides shell completion for registered vault names
func vaultNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	env, err := newCmdEnv(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := commands.ListVaults(commands.ListVaultsOptions{
		RegistryPath: env.paths.RegistryPath(),
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(result.Vaults))
	for _, v := range result.Vaults {
		names = append(names, v.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newVaultUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "use <name>",
		Short:             MsgVaultUseShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: vaultNameCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(cmd)
			if err != nil {
				return err
			}

			info, err := commands.UseVault(commands.UseVaultOptions{
				Name:         args[0],
				RegistryPath: env.paths.RegistryPath(),
			})
			if err != nil {
				return err
			}

			if env.format == style.FormatJSON {
				return env.printJSON(info)
			}
			fmt.Printf("Now using vault %s (%s)\n", info.Name, info.Path)
			return nil
		},
	}
}

func newVaultInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init <name>",
		Short:   MsgVaultInitShort,
		Long:    MsgVaultInitLong,
		Example: MsgVaultInitExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			vaultPath, _ := cmd.Flags().GetString("path")
			templateID, _ := cmd.Flags().GetString("template")
			if vaultPath == "" {
				vaultPath = name
			}
			vaultPath, err = filepath.Abs(paths.ExpandHome(vaultPath))
			if err != nil {
				return err
			}

			log.Info().
				Str("name", name).
				Str("path", vaultPath).
				Str("template", templateID).
				Msg("Initializing vault")

			result, err := commands.InitVault(commands.InitVaultOptions{
				Name:          name,
				Path:          vaultPath,
				RegistryPath:  env.paths.RegistryPath(),
				TemplateID:    templateID,
				TemplatesRoot: env.paths.TemplatesRoot(),
			})
			if err != nil {
				return err
			}

			if env.format == style.FormatJSON {
				return env.printJSON(result)
			}

			fmt.Printf("Created vault %s at %s\n", result.Name, result.Path)
			if result.Applied != nil {
				fmt.Println()
				fmt.Println(env.renderer.RenderApplyResult(result.Applied))
			}

			if hints := initHints(env, result.Applied != nil); hints != "" {
				fmt.Println()
				fmt.Println(hints)
			}
			return nil
		},
	}

	cmd.Flags().StringP("path", "p", "", MsgFlagVaultPath)
	cmd.Flags().StringP("template", "t", "", MsgFlagTemplate)

	return cmd
}

// initHints builds the follow-up suggestions shown after a vault init
func initHints(env *cmdEnv, templateApplied bool) string {
	cache := suggest.NewCache()
	cache.SetEnabled(env.cfg.Suggestions.Enabled)

	if !templateApplied {
		cache.Put(suggest.Suggestion{
			Key:     "apply-template",
			Message: "Provision the new vault from a template with",
			Command: "flint-note templates apply <id>",
		})
	}

	return env.renderer.RenderSuggestions(cache.Active())
}

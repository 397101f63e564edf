package flintnote

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/disnet/flint-note-sub011/pkg/commands"
	"github.com/disnet/flint-note-sub011/pkg/style"
	"github.com/disnet/flint-note-sub011/pkg/suggest"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		Example: MsgTemplatesExample,
		GroupID: "core",
		// Bare "templates" behaves like "templates list"
		RunE: runTemplatesList,
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())
	cmd.AddCommand(newTemplatesApplyCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgTemplatesListShort,
		Example: MsgTemplatesExample,
		RunE:    runTemplatesList,
	}
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv(cmd)
	if err != nil {
		return err
	}

	log.Info().Str("templates_root", env.paths.TemplatesRoot()).Msg("Listing templates")

	result, err := commands.ListTemplates(commands.ListTemplatesOptions{
		TemplatesRoot: env.paths.TemplatesRoot(),
		Ignore:        env.cfg.Templates.Ignore,
	})
	if err != nil {
		return fmt.Errorf(MsgErrListTemplates, err)
	}

	if env.format == style.FormatJSON {
		return env.printJSON(result)
	}
	fmt.Println(env.renderer.RenderTemplateList(result.Templates))
	return nil
}

// templateIDCompletion provides shell completion for template ids
func templateIDCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	env, err := newCmdEnv(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := commands.ListTemplates(commands.ListTemplatesOptions{
		TemplatesRoot: env.paths.TemplatesRoot(),
		Ignore:        env.cfg.Templates.Ignore,
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	ids := make([]string, 0, len(result.Templates))
	for _, tmpl := range result.Templates {
		ids = append(ids, tmpl.ID)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func newTemplatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show <template-id>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(cmd)
			if err != nil {
				return err
			}

			tmpl, err := commands.ShowTemplate(commands.ShowTemplateOptions{
				TemplatesRoot: env.paths.TemplatesRoot(),
				TemplateID:    args[0],
				Extension:     env.cfg.Notes.Extension,
				FallbackType:  env.cfg.Notes.DefaultType,
			})
			if err != nil {
				return err
			}

			if env.format == style.FormatJSON {
				return env.printJSON(tmpl)
			}
			fmt.Println(env.renderer.RenderTemplateDetail(tmpl))

			// Preview the initial note below the listing
			if initial := tmpl.InitialNote(); initial != nil {
				fmt.Println()
				fmt.Println(env.renderer.RenderNote(initial))
			}
			return nil
		},
	}
}

func newTemplatesApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "apply <template-id>",
		Short:             MsgApplyShort,
		Long:              MsgApplyLong,
		Example:           MsgApplyExample,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateIDCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(cmd)
			if err != nil {
				return err
			}

			vaultName, _ := cmd.Flags().GetString("vault")
			vaultPath, err := env.resolveVaultPath(vaultName)
			if err != nil {
				return err
			}

			log.Info().
				Str("template", args[0]).
				Str("vault", vaultPath).
				Msg("Applying template")

			result, err := commands.ApplyTemplate(commands.ApplyTemplateOptions{
				TemplatesRoot: env.paths.TemplatesRoot(),
				TemplateID:    args[0],
				VaultPath:     vaultPath,
				Extension:     env.cfg.Notes.Extension,
				FallbackType:  env.cfg.Notes.DefaultType,
			})
			if err != nil {
				return err
			}

			if env.format == style.FormatJSON {
				return env.printJSON(result)
			}
			fmt.Println(env.renderer.RenderApplyResult(result))

			if hints := applyHints(env, result.InitialNoteID); hints != "" {
				fmt.Println()
				fmt.Println(hints)
			}
			return nil
		},
	}

	cmd.Flags().String("vault", "", MsgFlagVault)

	return cmd
}

// applyHints builds the follow-up suggestions shown after an apply
func applyHints(env *cmdEnv, initialNoteID string) string {
	cache := suggest.NewCache()
	cache.SetEnabled(env.cfg.Suggestions.Enabled)

	if initialNoteID != "" {
		cache.Put(suggest.Suggestion{
			Key:     "open-initial-note",
			Message: "This template marks a starting note, note id " + initialNoteID,
		})
	}
	cache.Put(suggest.Suggestion{
		Key:     "switch-vault",
		Message: "Switch vaults any time with",
		Command: "flint-note vault use <name>",
	})

	return env.renderer.RenderSuggestions(cache.Active())
}

package flintnote

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "A template-driven note vault provisioner"
	MsgTemplatesShort     = "List available templates"
	MsgTemplatesListShort = "List available templates"
	MsgShowShort          = "Show a template in detail"
	MsgApplyShort         = "Apply a template to a vault"
	MsgVaultShort         = "Manage note vaults"
	MsgVaultListShort     = "List registered vaults"
	MsgVaultUseShort      = "Switch the current vault"
	MsgVaultInitShort     = "Create and register a new vault"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTemplatesDir = "Templates directory (overrides config and environment)"
	MsgFlagFormat       = "Output format (auto, term, text, json)"
	MsgFlagNoColor      = "Disable colored output"
	MsgFlagVault        = "Target vault name (defaults to the current vault)"
	MsgFlagVaultPath    = "Vault directory (defaults to <name> under the current directory)"
	MsgFlagTemplate     = "Template to apply into the new vault"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrNoVault       = "no vault selected: register one with 'flint-note vault init'"
	MsgErrListTemplates = "failed to list templates: %w"

	// Status messages
	MsgFallbackWarning = "Warning: using ./templates as the templates directory (set %s to silence this)\n"
)

// Long messages
const (
	MsgRootLong = `flint-note provisions note vaults from templates: reusable bundles of
note type definitions and starter notes. Templates are plain directories
holding a template.yml, note type definitions under note-types/, and
markdown notes under notes/.

Vaults are registered in a small TOML registry so you can switch between
them; applying a template creates its note types and notes inside the
selected vault.`

	MsgTemplatesLong = `List the templates found under the templates directory. Directories
that do not parse as templates are skipped and logged, never listed.`

	MsgShowLong = `Show one template in full: its metadata, the note types it defines,
and the notes it bundles. The note marked as the initial note is
flagged in the listing.`

	MsgApplyLong = `Apply a template to a vault: every note type the template defines is
created first, then every bundled note. Items that cannot be created
(for example on a second apply) are reported individually; the command
still succeeds as long as the template itself loads.`

	MsgVaultInitLong = `Create a vault directory, provision it with the default note type, and
register it under a name. The first registered vault becomes the
current one. With --template, the template is validated up front and
applied after registration.`

	MsgCompletionLong = `Generate a shell completion script for flint-note.

Bash:
  $ source <(flint-note completion bash)

Zsh:
  $ flint-note completion zsh > "${fpath[1]}/_flint-note"

Fish:
  $ flint-note completion fish | source

PowerShell:
  PS> flint-note completion powershell | Out-String | Invoke-Expression`
)

// MsgUsageTemplate is cobra's usage template with the section headers
// run through the bold/boldUpper helpers from formatting.go.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// Examples
const (
	MsgTemplatesExample = `  # List all templates
  flint-note templates

  # Same, as JSON
  flint-note templates list --format json`

	MsgShowExample = `  # Show the starter template
  flint-note templates show starter`

	MsgApplyExample = `  # Apply into the current vault
  flint-note templates apply starter

  # Apply into a named vault
  flint-note templates apply starter --vault work`

	MsgVaultInitExample = `  # Register ~/notes as vault "personal"
  flint-note vault init personal --path ~/notes

  # Bootstrap a new vault from a template
  flint-note vault init work --path ~/work-notes --template starter`
)

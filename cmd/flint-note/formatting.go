package flintnote

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledStdout reports whether stdout can take ANSI styling.
func styledStdout() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func styleBold(s string) string {
	if !styledStdout() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the text helpers used by the usage template.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  styleBold,
		"upper": strings.ToUpper,
		"boldUpper": func(s string) string {
			return styleBold(strings.ToUpper(s))
		},
	})
}

// Generates shell completion scripts for packaging. Interactive users
// get the same scripts from "flint-note completion <shell>".
package main

import (
	"fmt"
	"io"
	"os"

	flintnote "github.com/disnet/flint-note-sub011/cmd/flint-note"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: flint-note-completions <bash|zsh|fish|powershell>")
	}

	root := flintnote.NewRootCmd()
	switch args[0] {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	}
	return fmt.Errorf("unknown shell %q (want bash, zsh, fish, or powershell)", args[0])
}

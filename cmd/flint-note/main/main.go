package main

import (
	"fmt"
	"os"

	flintnote "github.com/disnet/flint-note-sub011/cmd/flint-note"
	"github.com/disnet/flint-note-sub011/pkg/style"
)

func main() {
	rootCmd := flintnote.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.FormatAuto.Resolve(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}

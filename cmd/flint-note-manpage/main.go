package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	flintnote "github.com/disnet/flint-note-sub011/cmd/flint-note"
	"github.com/disnet/flint-note-sub011/internal/version"
)

func main() {
	rootCmd := flintnote.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FLINT-NOTE",
		Section: "1",
		Source:  "flint-note " + version.Version,
		Manual:  "flint-note manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command output is rendered.
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText based on the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled output with ANSI colors
	FormatTerminal
	// FormatText renders plain text, for pipes and NO_COLOR environments
	FormatText
	// FormatJSON renders machine-readable JSON
	FormatJSON
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

var formatsByName = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat parses a --format flag value, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f, ok := formatsByName[strings.ToLower(s)]
	if !ok {
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
	return f, nil
}

// DetectFormat decides between terminal and plain output for the
// given stream. NO_COLOR, a non-tty stream, or a colorless terminal
// all force plain text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isTTY(output) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for the given output
func (f Format) Resolve(output *os.File) Format {
	if f == FormatAuto {
		return DetectFormat(output)
	}
	return f
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package style

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders note and template content for terminal
// display.
type MarkdownRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a
	// path to a custom style file. Empty or "auto" detects from the
	// terminal.
	Style string

	// Width wraps output at the given column. Zero lets glamour decide.
	Width int
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Any glamour
// failure falls back to the raw content.
func (r *MarkdownRenderer) Render(content string) string {
	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *MarkdownRenderer) options() []glamour.TermRendererOption {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

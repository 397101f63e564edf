package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/suggest"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderTemplateList(templates []types.TemplateInfo) string
	RenderTemplateDetail(tmpl *types.Template) string
	RenderNote(note *types.TemplateNote) string
	RenderApplyResult(result *types.ApplyTemplateResult) string
	RenderVaultList(vaults []types.VaultInfo) string
	RenderSuggestions(suggestions []suggest.Suggestion) string
	RenderError(err error) string
}

// NewRenderer returns the renderer matching the resolved output format.
// FormatTerminal gets the rich renderer, everything else plain text.
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	width    int
	markdown *MarkdownRenderer
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		width:    80, // Default width, can be updated
		markdown: NewMarkdownRenderer(),
	}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
	r.markdown.Width = width
}

// RenderTemplateList renders the template catalog
func (r *TerminalRenderer) RenderTemplateList(templates []types.TemplateInfo) string {
	if len(templates) == 0 {
		return MutedStyle.Render("No templates found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Available Templates") + "\n\n")

	for _, tmpl := range templates {
		bullet := tmpl.Icon
		if bullet == "" {
			bullet = InfoIndicator
		}

		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bullet,
			Bold(tmpl.Name),
			MutedStyle.Render("("+tmpl.ID+")")))

		if tmpl.Description != "" {
			result.WriteString(Indent(NormalStyle.Render(tmpl.Description), 1) + "\n")
		}

		counts := fmt.Sprintf("%s, %s",
			plural(tmpl.NoteTypes, "note type"),
			plural(tmpl.Notes, "note"))
		result.WriteString(Indent(MutedStyle.Render(counts), 1) + "\n")

		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderTemplateDetail renders a full template description
func (r *TerminalRenderer) RenderTemplateDetail(tmpl *types.Template) string {
	var result strings.Builder

	title := tmpl.Metadata.Name
	if tmpl.Metadata.Icon != "" {
		title = tmpl.Metadata.Icon + " " + title
	}
	result.WriteString(TitleStyle.Render(title) + "\n\n")

	var meta []string
	meta = append(meta, tmpl.Metadata.ID)
	if tmpl.Metadata.Version != "" {
		meta = append(meta, "v"+tmpl.Metadata.Version)
	}
	if tmpl.Metadata.Author != "" {
		meta = append(meta, "by "+tmpl.Metadata.Author)
	}
	result.WriteString(MutedStyle.Render(strings.Join(meta, " · ")) + "\n")

	if tmpl.Metadata.Description != "" {
		result.WriteString(NormalStyle.Render(tmpl.Metadata.Description) + "\n")
	}

	result.WriteString("\n" + SubtitleStyle.Render("Note Types") + "\n")
	if len(tmpl.NoteTypes) == 0 {
		result.WriteString(Indent(MutedStyle.Render("none"), 1) + "\n")
	}
	for _, nt := range tmpl.NoteTypes {
		line := fmt.Sprintf("%s %s", InfoIndicator, NoteTypeStyle.Render(nt.Name))
		if nt.Purpose != "" {
			line += " " + MutedStyle.Render(nt.Purpose)
		}
		result.WriteString(Indent(line, 1) + "\n")
	}

	result.WriteString("\n" + SubtitleStyle.Render("Notes") + "\n")
	if len(tmpl.Notes) == 0 {
		result.WriteString(Indent(MutedStyle.Render("none"), 1) + "\n")
	}
	for _, note := range tmpl.Notes {
		line := fmt.Sprintf("%s %s %s",
			InfoIndicator,
			NoteStyle.Render(note.Title),
			PathStyle.Render(note.Filename))
		if tmpl.Metadata.InitialNote != "" && note.Filename == tmpl.Metadata.InitialNote {
			line += " " + SuccessStyle.Render("(initial)")
		}
		result.WriteString(Indent(line, 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderNote renders one template note with its content as markdown
func (r *TerminalRenderer) RenderNote(note *types.TemplateNote) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s\n",
		NoteStyle.Render(note.Filename),
		MutedStyle.Render("→ "+note.Type)))
	result.WriteString(r.markdown.Render(note.Content))
	return strings.TrimRight(result.String(), "\n")
}

// RenderApplyResult renders the outcome of applying a template
func (r *TerminalRenderer) RenderApplyResult(result *types.ApplyTemplateResult) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("Applied %s to %s\n\n",
		TemplateStyle.Render(result.TemplateID),
		PathStyle.Render(result.VaultPath)))

	out.WriteString(fmt.Sprintf("%s %s created\n",
		SuccessIndicator, plural(result.NoteTypesCreated, "note type")))
	out.WriteString(fmt.Sprintf("%s %s created\n",
		SuccessIndicator, plural(result.NotesCreated, "note")))

	if len(result.Errors) > 0 {
		out.WriteString(fmt.Sprintf("%s %s\n",
			WarningIndicator,
			WarningStyle.Render(plural(len(result.Errors), "item")+" failed:")))
		for _, msg := range result.Errors {
			out.WriteString(Indent(fmt.Sprintf("%s %s", ErrorIndicator, msg), 1) + "\n")
		}
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderVaultList renders the registered vaults, marking the current one
func (r *TerminalRenderer) RenderVaultList(vaults []types.VaultInfo) string {
	if len(vaults) == 0 {
		return MutedStyle.Render("No vaults registered")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Vaults") + "\n\n")

	for _, v := range vaults {
		marker := " "
		name := v.Name
		if v.Current {
			marker = CurrentIndicator
			name = Bold(v.Name)
		}
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			marker,
			VaultStyle.Render(name),
			PathStyle.Render(v.Path)))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSuggestions renders follow-up hints after a command
func (r *TerminalRenderer) RenderSuggestions(suggestions []suggest.Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	var result strings.Builder
	for _, s := range suggestions {
		result.WriteString(fmt.Sprintf("%s %s", InfoIndicator, MutedStyle.Render(s.Message)))
		if s.Command != "" {
			result.WriteString(" " + CodeStyle.Render(s.Command))
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	var flintErr *errors.FlintError
	if stderrors.As(err, &flintErr) {
		msg := flintErr.Message
		if wrapped := flintErr.Unwrap(); wrapped != nil {
			msg = msg + ": " + wrapped.Error()
		}
		return fmt.Sprintf("%s Error [%s]: %s",
			ErrorIndicator,
			ErrorStyle.Render(string(flintErr.Code)),
			msg)
	}

	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderTemplateList renders a plain template catalog
func (r *PlainRenderer) RenderTemplateList(templates []types.TemplateInfo) string {
	if len(templates) == 0 {
		return "No templates found"
	}

	var result strings.Builder
	result.WriteString("Available Templates:\n")

	for _, tmpl := range templates {
		result.WriteString(fmt.Sprintf("  - %s: %s (%s, %s)\n",
			tmpl.ID,
			tmpl.Name,
			plural(tmpl.NoteTypes, "note type"),
			plural(tmpl.Notes, "note")))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderTemplateDetail renders a plain template description
func (r *PlainRenderer) RenderTemplateDetail(tmpl *types.Template) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("Template: %s (%s)\n", tmpl.Metadata.Name, tmpl.Metadata.ID))
	if tmpl.Metadata.Description != "" {
		result.WriteString(tmpl.Metadata.Description + "\n")
	}

	result.WriteString("Note types:\n")
	for _, nt := range tmpl.NoteTypes {
		result.WriteString(fmt.Sprintf("  - %s: %s\n", nt.Name, nt.Purpose))
	}

	result.WriteString("Notes:\n")
	for _, note := range tmpl.Notes {
		initial := ""
		if tmpl.Metadata.InitialNote != "" && note.Filename == tmpl.Metadata.InitialNote {
			initial = " (initial)"
		}
		result.WriteString(fmt.Sprintf("  - %s [%s]%s\n", note.Filename, note.Type, initial))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderNote renders a plain note
func (r *PlainRenderer) RenderNote(note *types.TemplateNote) string {
	return fmt.Sprintf("%s [%s]\n%s", note.Filename, note.Type, strings.TrimRight(note.Content, "\n"))
}

// RenderApplyResult renders a plain apply outcome
func (r *PlainRenderer) RenderApplyResult(result *types.ApplyTemplateResult) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("Applied template %s to %s\n", result.TemplateID, result.VaultPath))
	out.WriteString(fmt.Sprintf("Note types created: %d\n", result.NoteTypesCreated))
	out.WriteString(fmt.Sprintf("Notes created: %d\n", result.NotesCreated))

	if len(result.Errors) > 0 {
		out.WriteString("Errors:\n")
		for _, msg := range result.Errors {
			out.WriteString("  - " + msg + "\n")
		}
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderVaultList renders plain vaults
func (r *PlainRenderer) RenderVaultList(vaults []types.VaultInfo) string {
	if len(vaults) == 0 {
		return "No vaults registered"
	}

	var result strings.Builder
	for _, v := range vaults {
		marker := " "
		if v.Current {
			marker = "*"
		}
		result.WriteString(fmt.Sprintf("%s %s %s\n", marker, v.Name, v.Path))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSuggestions renders plain follow-up hints
func (r *PlainRenderer) RenderSuggestions(suggestions []suggest.Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	var result strings.Builder
	for _, s := range suggestions {
		result.WriteString("Tip: " + s.Message)
		if s.Command != "" {
			result.WriteString(" (" + s.Command + ")")
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

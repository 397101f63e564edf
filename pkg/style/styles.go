package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Text styles
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	NormalStyle   = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle     = lipgloss.NewStyle().Foreground(SecondaryColor).Italic(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
)

// Entity styles color the things flint-note talks about most
var (
	TemplateStyle = lipgloss.NewStyle().Foreground(TemplateColor).Bold(true)
	NoteTypeStyle = lipgloss.NewStyle().Foreground(NoteTypeColor).Bold(true)
	NoteStyle     = lipgloss.NewStyle().Foreground(NoteColor)
	VaultStyle    = lipgloss.NewStyle().Foreground(VaultColor).Bold(true)
)

// Indicators prefix result lines in terminal output
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
	CurrentIndicator = SuccessStyle.Render("*")
)

var (
	boldStyle      = lipgloss.NewStyle().Bold(true)
	italicStyle    = lipgloss.NewStyle().Italic(true)
	underlineStyle = lipgloss.NewStyle().Underline(true)
)

// Indent shifts s right by level stops of two spaces.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return boldStyle.Render(s)
}

func Italic(s string) string {
	return italicStyle.Render(s)
}

func Underline(s string) string {
	return underlineStyle.Render(s)
}

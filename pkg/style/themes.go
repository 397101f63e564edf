package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. AdaptiveColor picks the variant for the terminal background;
// light values lean dark for contrast on white, dark values the reverse.
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#0F766E", // Teal
		Dark:  "#2DD4BF",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#57534E", // Stone
		Dark:  "#A8A29E",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#15803D", // Green
		Dark:  "#4ADE80",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#B91C1C", // Red
		Dark:  "#F87171",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B45309", // Amber
		Dark:  "#FBBF24",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#0369A1", // Sky
		Dark:  "#38BDF8",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#1C1917", // Near black
		Dark:  "#FAFAF9", // Near white
	}

	TextColor = lipgloss.AdaptiveColor{
		Light: "#44403C",
		Dark:  "#D6D3D1",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#78716C",
		Dark:  "#A8A29E",
	}

	SurfaceColor = lipgloss.AdaptiveColor{
		Light: "#F5F5F4",
		Dark:  "#292524",
	}
)

// Entity colors keep templates, note types, notes, and vaults visually
// distinct in mixed listings.
var (
	TemplateColor = lipgloss.AdaptiveColor{
		Light: "#0E7490", // Cyan
		Dark:  "#22D3EE",
	}

	NoteTypeColor = lipgloss.AdaptiveColor{
		Light: "#7E22CE", // Purple
		Dark:  "#C084FC",
	}

	NoteColor = lipgloss.AdaptiveColor{
		Light: "#C2410C", // Orange
		Dark:  "#FB923C",
	}

	VaultColor = lipgloss.AdaptiveColor{
		Light: "#047857", // Emerald
		Dark:  "#34D399",
	}
)

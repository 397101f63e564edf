package style

import (
	"strings"
	"testing"
)

func TestEmphasisHelpers(t *testing.T) {
	helpers := map[string]func(string) string{
		"Bold":      Bold,
		"Italic":    Italic,
		"Underline": Underline,
	}

	for name, helper := range helpers {
		t.Run(name, func(t *testing.T) {
			got := helper("daily-journal")
			if !strings.Contains(got, "daily-journal") {
				t.Errorf("%s(%q) = %q, text lost", name, "daily-journal", got)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    int
		expected string
	}{
		{
			name:     "level zero is a no-op",
			text:     "general",
			level:    0,
			expected: "general",
		},
		{
			name:     "one stop",
			text:     "general",
			level:    1,
			expected: "  general",
		},
		{
			name:     "three stops",
			text:     "general",
			level:    3,
			expected: "      general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.text, tt.level); got != tt.expected {
				t.Errorf("Indent(%q, %d) = %q, want %q", tt.text, tt.level, got, tt.expected)
			}
		})
	}
}

func TestIndicators(t *testing.T) {
	indicators := map[string]struct {
		rendered string
		glyph    string
	}{
		"success": {SuccessIndicator, "✓"},
		"error":   {ErrorIndicator, "✗"},
		"warning": {WarningIndicator, "!"},
		"info":    {InfoIndicator, "•"},
		"current": {CurrentIndicator, "*"},
	}

	for name, ind := range indicators {
		t.Run(name, func(t *testing.T) {
			if !strings.Contains(ind.rendered, ind.glyph) {
				t.Errorf("%s indicator %q missing glyph %q", name, ind.rendered, ind.glyph)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "note"); got != "1 note" {
		t.Errorf("Expected '1 note', got %q", got)
	}
	if got := plural(0, "note"); got != "0 notes" {
		t.Errorf("Expected '0 notes', got %q", got)
	}
	if got := plural(3, "note type"); got != "3 note types" {
		t.Errorf("Expected '3 note types', got %q", got)
	}
}

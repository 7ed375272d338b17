package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette for the audioscribe TUI
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple - main accent
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan - secondary accent

	// Status colors
	ColorSuccess = lipgloss.Color("#22C55E") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber

	// Text colors, picked for the detected terminal background
	ColorText, ColorMuted, ColorSubtle = textPalette(termenv.HasDarkBackground())
)

// textPalette returns text/muted/subtle colors readable on the given
// background.
func textPalette(dark bool) (lipgloss.Color, lipgloss.Color, lipgloss.Color) {
	if dark {
		return lipgloss.Color("#F8FAFC"), // bright white
			lipgloss.Color("#94A3B8"), // slate gray
			lipgloss.Color("#64748B") // darker gray
	}
	return lipgloss.Color("#1E293B"), // near black
		lipgloss.Color("#475569"), // slate
		lipgloss.Color("#94A3B8") // light gray
}

// Base styles for audioscribe TUI components
var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Label style for form field labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// Success style for positive feedback
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning style for warnings
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Subtle style for hints and descriptions
	StyleSubtle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)
)

const logoASCII = `
                 _ _                     _ _
  __ _ _   _  __| (_) ___  ___  ___ _ __(_) |__   ___
 / _` + "`" + ` | | | |/ _` + "`" + ` | |/ _ \/ __|/ __| '__| | '_ \ / _ \
 | (_| | |_| | (_| | | (_) \__ \ (__| |  | | |_) |  __/
  \__,_|\__,_|\__,_|_|\___/|___/\___|_|  |_|_.__/ \___|`

// Logo returns the audioscribe ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}

package pseudostates

import "github.com/charmbracelet/lipgloss"

// Terminal styles, by role. Lipgloss degrades colors to what the terminal
// supports.
var (
	// StyleLocation marks "file:line:col:" prefixes and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError marks issues that block a rewrite.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning marks carets and warning sections.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleReplacement marks rewritten selector lists.
	StyleReplacement = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is for linter names and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle renders text with style, or returns it as is when colors are off.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

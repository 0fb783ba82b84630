// Package tui: Lipgloss style constants for the "Garage Dark" theme.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all theme-aware Lipgloss styles.
type Styles struct {
	// Colors
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color

	// Component styles
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	PanelTitle  lipgloss.Style
	SoundLog    lipgloss.Style
	Footer      lipgloss.Style
	FooterKey   lipgloss.Style
}

// newStyles returns the styles for the named theme. Only "garage-dark"
// exists; unknown names fall back to it.
func newStyles(theme string) Styles {
	_ = theme

	primary := lipgloss.Color("#F6AD55")
	accent := lipgloss.Color("#63B3ED")
	success := lipgloss.Color("#68D391")
	danger := lipgloss.Color("#F56565")
	muted := lipgloss.Color("#4A5568")
	text := lipgloss.Color("#E2E8F0")

	return Styles{
		Primary: primary,
		Accent:  accent,
		Success: success,
		Danger:  danger,
		Muted:   muted,
		Text:    text,

		Header: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		PanelTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1),
		SoundLog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}

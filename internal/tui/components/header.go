package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders the top bar with the app title and active count.
func RenderHeader(active, width int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F6AD55")).Bold(true).
		Render("◉ VROOM")
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4A5568")).
		Render(fmt.Sprintf("  %d vehicles on the floor", active))

	return lipgloss.NewStyle().Width(width).Padding(0, 1).
		Render(title + status)
}

// Package components: header and fleet table rendering for the showroom TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// FleetRow is one display row of the fleet table.
type FleetRow struct {
	Kind      string
	Brand     string
	Model     string
	Horn      string
	HasEngine bool
}

// RenderFleetTable renders the fleet list with the selected row highlighted.
func RenderFleetTable(rows []FleetRow, selected, width, height int) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4A5568")).Bold(true).Padding(0, 1)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0")).Padding(0, 1)
	selStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("#171A2B")).
		Foreground(lipgloss.Color("#F6AD55")).Bold(true).Padding(0, 1)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F6AD55")).Bold(true).
		Padding(0, 1).
		Render("FLEET")

	hdr := headerStyle.Render(
		fmt.Sprintf("%-8s %-12s %-12s %-22s %s",
			"KIND", "BRAND", "MODEL", "HORN", "ENGINE"),
	)

	body := ""
	for i, r := range rows {
		model := r.Model
		if model == "" {
			model = "-"
		}
		engine := "-"
		if r.HasEngine {
			engine = "yes"
		}

		line := fmt.Sprintf("%-8s %-12s %-12s %-22s %s",
			truncate(r.Kind, 8), truncate(r.Brand, 12),
			truncate(model, 12), truncate(r.Horn, 22), engine,
		)

		if i == selected {
			body += selStyle.Render("▶ "+line) + "\n"
		} else {
			body += rowStyle.Render("  "+line) + "\n"
		}
	}

	if len(rows) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4A5568")).
			Padding(2, 2).
			Render("Empty fleet. Run 'vroom init' to scaffold one.")
	}

	return lipgloss.NewStyle().Width(width).Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, hdr, body))
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

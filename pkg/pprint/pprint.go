// Package pprint provides styled terminal output for the vroom CLI —
// status lines, headers, key/value rows, panels, and tables.
package pprint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Colour palette
// ─────────────────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("#F6AD55") // Showroom amber
	ColorAccent  = lipgloss.Color("#63B3ED") // Chrome blue
	ColorSuccess = lipgloss.Color("#48BB78") // Green
	ColorWarning = lipgloss.Color("#ECC94B") // Yellow
	ColorError   = lipgloss.Color("#FC8181") // Red
	ColorMuted   = lipgloss.Color("#4A5568") // Grey
	ColorText    = lipgloss.Color("#E2E8F0") // Off-white
)

// ─────────────────────────────────────────────────────────────────────────────
// Styles
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(12)

	StylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)
)

// DisableColor forces plain-text output regardless of terminal capabilities.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ─────────────────────────────────────────────────────────────────────────────
// Simple output helpers
// ─────────────────────────────────────────────────────────────────────────────

// Success prints a green ✓ success line.
func Success(format string, args ...any) {
	fmt.Println(StyleSuccess.Render("✓ ") + StyleText.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a yellow ⚠ warning line.
func Warn(format string, args ...any) {
	fmt.Println(StyleWarning.Render("⚠ ") + StyleText.Render(fmt.Sprintf(format, args...)))
}

// Error prints a red ✗ error line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, StyleError.Render("✗ ")+StyleText.Render(fmt.Sprintf(format, args...)))
}

// Info prints a dimmed info line.
func Info(format string, args ...any) {
	fmt.Println(StyleMuted.Render("  " + fmt.Sprintf(format, args...)))
}

// Header prints a section header.
func Header(title string) {
	bar := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(StylePrimary.Render(bar))
	fmt.Println(StylePrimary.Render(" ◉ " + strings.ToUpper(title)))
	fmt.Println(StylePrimary.Render(bar))
}

// KV prints a labelled key-value pair.
func KV(key, value string) {
	fmt.Println(StyleLabel.Render(key) + StyleText.Render(value))
}

// Rule prints a full-width horizontal rule.
func Rule(w int) {
	fmt.Println(StyleMuted.Render(strings.Repeat("─", w)))
}

// Panel renders a rounded-border box with optional title.
func Panel(title, body string) {
	content := body
	if title != "" {
		content = StyleAccent.Render(" "+title+" ") + "\n" + body
	}
	fmt.Println(StylePanel.Render(content))
}

// ─────────────────────────────────────────────────────────────────────────────
// Table
// ─────────────────────────────────────────────────────────────────────────────

// Table renders a simple terminal table with coloured headers.
type Table struct {
	headers []string
	rows    [][]string
	out     io.Writer
}

// NewTable creates a new Table writing to stdout.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, out: os.Stdout}
}

// AddRow appends a data row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render prints the table.
func (t *Table) Render() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprintln(t.out)
	header := ""
	for i, h := range t.headers {
		header += fmt.Sprintf("%-*s", widths[i]+2, h)
	}
	fmt.Fprintln(t.out, StylePrimary.Render(header))

	sep := ""
	for _, w := range widths {
		sep += strings.Repeat("─", w+2)
	}
	fmt.Fprintln(t.out, StyleMuted.Render(sep))

	for _, row := range t.rows {
		line := ""
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			line += fmt.Sprintf("%-*s", w+2, cell)
		}
		fmt.Fprintln(t.out, StyleText.Render(line))
	}
	fmt.Fprintln(t.out)
}

// Package tui defines the Bubble Tea model for the interactive showroom.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vroom-sh/vroom/internal/core/logger"
	"github.com/vroom-sh/vroom/internal/tui/components"
	"github.com/vroom-sh/vroom/pkg/vehicle"
)

// Entry is one vehicle on the showroom floor. Out is the vehicle's private
// output buffer; sounds are read from it after each dispatched call.
type Entry struct {
	Spec      vehicle.Spec
	Unit      vehicle.Unit
	Out       *strings.Builder
	Horn      string
	HasEngine bool
}

// Config carries dependencies into the TUI app.
type Config struct {
	Entries []Entry
	Theme   string
	Log     *logger.Logger
}

// Model is the root Bubble Tea model (Elm architecture).
type Model struct {
	cfg Config

	// Dimensions
	width  int
	height int

	selected int
	sounds   []string
	soundLog viewport.Model

	styles Styles
}

// New constructs a new TUI Model.
func New(cfg Config) *Model {
	styles := newStyles(cfg.Theme)
	vp := viewport.New(0, 0)
	vp.Style = styles.SoundLog

	return &Model{
		cfg:      cfg,
		soundLog: vp,
		styles:   styles,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.soundLog.Width = msg.Width - 4
		m.soundLog.Height = max(3, msg.Height-len(m.cfg.Entries)-8)
		m.refreshSoundLog()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}

		case key.Matches(msg, keys.Down):
			if m.selected < len(m.cfg.Entries)-1 {
				m.selected++
			}

		case key.Matches(msg, keys.Honk):
			m.dispatch(func(u vehicle.Unit) bool {
				u.Honk()
				return true
			})

		case key.Matches(msg, keys.Engine):
			m.dispatch(func(u vehicle.Unit) bool {
				es, ok := u.(vehicle.EngineStarter)
				if ok {
					es.StartEngine()
				}
				return ok
			})
		}
	}
	return m, nil
}

// dispatch invokes call on the selected vehicle and appends whatever it wrote
// to the sound log. call reports whether the vehicle supported the action.
func (m *Model) dispatch(call func(vehicle.Unit) bool) {
	if len(m.cfg.Entries) == 0 {
		return
	}
	e := &m.cfg.Entries[m.selected]

	e.Out.Reset()
	supported := call(e.Unit)
	if !supported {
		m.sounds = append(m.sounds, fmt.Sprintf("%s has no engine to start", e.Unit.Brand()))
		m.refreshSoundLog()
		return
	}

	sound := strings.TrimSpace(e.Out.String())
	e.Out.Reset()
	m.sounds = append(m.sounds, fmt.Sprintf("%s: %s", e.Unit.Brand(), sound))
	m.refreshSoundLog()
}

func (m *Model) refreshSoundLog() {
	m.soundLog.SetContent(strings.Join(m.sounds, "\n"))
	m.soundLog.GotoBottom()
}

// ─────────────────────────────────────────────────────────────────────────────
// View
// ─────────────────────────────────────────────────────────────────────────────

func (m *Model) View() string {
	rows := make([]components.FleetRow, 0, len(m.cfg.Entries))
	for _, e := range m.cfg.Entries {
		rows = append(rows, components.FleetRow{
			Kind:      e.Spec.Kind,
			Brand:     e.Unit.Brand(),
			Model:     e.Spec.Model,
			Horn:      e.Horn,
			HasEngine: e.HasEngine,
		})
	}

	header := components.RenderHeader(len(rows), m.width)
	table := components.RenderFleetTable(rows, m.selected, m.width, len(rows)+3)
	soundTitle := m.styles.PanelTitle.Render("SOUNDS")
	footer := m.styles.Footer.Render(
		m.styles.FooterKey.Render("↑/↓") + " select  " +
			m.styles.FooterKey.Render("enter") + " honk  " +
			m.styles.FooterKey.Render("s") + " start engine  " +
			m.styles.FooterKey.Render("q") + " quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, table, soundTitle, m.soundLog.View(), footer)
}

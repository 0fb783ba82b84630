// vroom ui — launch the interactive showroom.
package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/internal/tui"
	"github.com/vroom-sh/vroom/pkg/vehicle"
)

func NewUICmd() *cobra.Command {
	return &cobra.Command{
		Use:          "ui",
		Short:        "Launch the interactive showroom",
		Example:      `  vroom ui`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			specs := rt.Config.FleetSpecs()
			entries := make([]tui.Entry, 0, len(specs))
			for i, spec := range specs {
				out := &strings.Builder{}
				u, err := vehicle.Build(spec, vehicle.WithOutput(out))
				if err != nil {
					return fmt.Errorf("fleet[%d]: %w", i, err)
				}

				// Capture the horn line once for the table column.
				out.Reset()
				u.Honk()
				horn := strings.TrimSpace(out.String())
				out.Reset()

				_, hasEngine := u.(vehicle.EngineStarter)
				entries = append(entries, tui.Entry{
					Spec:      spec,
					Unit:      u,
					Out:       out,
					Horn:      horn,
					HasEngine: hasEngine,
				})
			}

			app := tui.New(tui.Config{
				Entries: entries,
				Theme:   rt.Config.UI.Theme,
				Log:     rt.Log,
			})

			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			// Release the floor, newest first.
			for i := len(entries) - 1; i >= 0; i-- {
				if err := entries[i].Unit.Close(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// vroom fleet — list and exercise the fleet defined in vroom.yaml.
package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/pkg/pprint"
	"github.com/vroom-sh/vroom/pkg/vehicle"
)

func NewFleetCmd() *cobra.Command {
	var (
		honk  bool
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Show the fleet defined in vroom.yaml",
		Example: `  vroom fleet
  vroom fleet --honk
  vroom fleet --trace`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			specs := rt.Config.FleetSpecs()
			rt.Log.Debug("building fleet", "size", len(specs))

			// Each vehicle writes into its own buffer so construction and
			// release traces stay out of the table.
			fl := vehicle.NewFleet()
			bufs := make([]*bytes.Buffer, 0, len(specs))
			for i, spec := range specs {
				buf := &bytes.Buffer{}
				u, err := vehicle.Build(spec, vehicle.WithOutput(buf))
				if err != nil {
					return fmt.Errorf("fleet[%d]: %w", i, err)
				}
				fl.Add(u)
				bufs = append(bufs, buf)
			}

			table := pprint.NewTable("KIND", "BRAND", "MODEL", "HORN")
			for i, u := range fl.Units() {
				bufs[i].Reset()
				u.Honk()
				horn := strings.TrimSpace(bufs[i].String())

				model := "-"
				if car, ok := u.(*vehicle.Car); ok && car.Model() != "" {
					model = car.Model()
				}
				table.AddRow(specs[i].Kind, u.Brand(), model, horn)
			}
			table.Render()

			if honk {
				for i, u := range fl.Units() {
					bufs[i].Reset()
					u.Honk()
					if es, ok := u.(vehicle.EngineStarter); ok {
						es.StartEngine()
					}
					fmt.Print(bufs[i].String())
				}
			}

			for i := range bufs {
				bufs[i].Reset()
			}
			if err := fl.Close(); err != nil {
				return err
			}
			if trace {
				for i := len(bufs) - 1; i >= 0; i-- {
					for _, line := range strings.Split(strings.TrimSpace(bufs[i].String()), "\n") {
						pprint.Info("%s", line)
					}
				}
			}

			pprint.Success("%d vehicles, %d active after release", fl.Len(), fl.Active())
			return nil
		},
	}

	cmd.Flags().BoolVar(&honk, "honk", false, "Sound every horn (and start every engine) after listing")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print release traces after the fleet is closed")
	return cmd
}

// vroom honk — build a single vehicle and sound it.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/pkg/vehicle"
)

func NewHonkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "honk <kind> <brand> [model]",
		Short: "Build one vehicle, honk it, and start its engine if it has one",
		Example: `  vroom honk car Ford Mustang
  vroom honk truck Volvo`,
		Args:         cobra.RangeArgs(2, 3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			spec := vehicle.Spec{Kind: args[0], Brand: args[1]}
			if len(args) == 3 {
				spec.Model = args[2]
			}

			u, err := vehicle.Build(spec, vehicle.WithOutput(os.Stdout))
			if err != nil {
				return err
			}
			rt.Log.Debug("built vehicle", "kind", spec.Kind, "brand", u.Brand())

			u.Honk()
			if es, ok := u.(vehicle.EngineStarter); ok {
				es.StartEngine()
			}
			return u.Close()
		},
	}
}

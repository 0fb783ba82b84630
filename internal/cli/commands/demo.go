// vroom demo — run the full showroom demonstration.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/internal/showroom"
)

func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "demo",
		Short:        "Run the full showroom demonstration",
		Long:         "Constructs one vehicle of every kind, exercises accessors, horns, and the engine capability, then releases two vehicles through base-typed handles.",
		Example:      `  vroom demo`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())
			rt.Log.Debug("starting showroom demonstration")
			return showroom.Run(os.Stdout)
		},
	}
}

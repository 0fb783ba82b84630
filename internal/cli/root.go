// Package cli defines the root Cobra command and global flag/context setup.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/internal/cli/commands"
	"github.com/vroom-sh/vroom/internal/core/config"
	"github.com/vroom-sh/vroom/internal/core/logger"
	"github.com/vroom-sh/vroom/pkg/errs"
	"github.com/vroom-sh/vroom/pkg/pprint"
)

// globalFlags holds values bound to persistent global flags.
var globalFlags struct {
	configFile string
	debug      bool
	jsonOutput bool
	noColor    bool
}

// rootCmd is the base command for vroom.
var rootCmd = &cobra.Command{
	Use:           "vroom",
	Short:         "vroom — A vehicle showroom for the terminal",
	Long:          ``, // overridden by SetHelpTemplate below
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `vroom` — help func already prints banner
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}
		return initRuntime(cmd)
	},
}

// Execute runs the CLI. Called by main().
func Execute() {
	// Show banner before every help screen
	origHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		pprint.PrintBanner(commands.Version, commands.BuildDate)
		origHelp(cmd, args)
	})

	if err := rootCmd.Execute(); err != nil {
		if ve := errs.AsVroom(err); ve != nil {
			pprint.Error("%s", ve.UserMessage())
		} else {
			pprint.Error("%s", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.configFile, "config", "c", "", "Path to vroom.yaml (defaults to auto-discovery)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.jsonOutput, "json", false, "Output in machine-readable JSON where supported")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.noColor, "no-color", false, "Disable styled output")

	// Register all subcommands
	rootCmd.AddCommand(
		commands.NewInitCmd(),
		commands.NewDemoCmd(),
		commands.NewFleetCmd(),
		commands.NewHonkCmd(),
		commands.NewUICmd(),
		commands.NewVersionCmd(),
	)
}

// initRuntime loads config and logger before each command runs.
func initRuntime(cmd *cobra.Command) error {
	if globalFlags.noColor {
		pprint.DisableColor()
	}

	cfg, err := config.Load(globalFlags.configFile)
	if err != nil && globalFlags.configFile != "" {
		return errs.Wrap(err, errs.ErrConfig, "cli.init_runtime")
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	logLevel := "info"
	logFormat := "text"
	if cfg.Log.Level != "" {
		logLevel = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		logFormat = cfg.Log.Format
	}

	log, err := logger.Init(logLevel, logFormat, globalFlags.debug)
	if err != nil {
		return errs.Wrap(err, errs.ErrInternal, "cli.init_runtime.logger")
	}

	// Store in command context
	cmd.SetContext(commands.NewContext(cmd.Context(), &commands.Runtime{
		Config: cfg,
		Log:    log,
		Flags: commands.GlobalFlags{
			Debug:      globalFlags.debug,
			JSONOutput: globalFlags.jsonOutput,
			NoColor:    globalFlags.noColor,
		},
	}))

	return nil
}

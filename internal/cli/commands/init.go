// vroom init — scaffold a new vroom.yaml in the target directory.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vroom-sh/vroom/internal/core/config"
)

func NewInitCmd() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new vroom.yaml in the current (or specified) directory",
		Example: `  vroom init
  vroom init --path ./my-garage`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetPath == "" {
				targetPath = "."
			}
			outFile := filepath.Join(targetPath, "vroom.yaml")
			if _, err := os.Stat(outFile); err == nil {
				return fmt.Errorf("vroom.yaml already exists at %s — delete it first to reinitialise", outFile)
			}

			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("create dir %q: %w", targetPath, err)
			}

			if err := os.WriteFile(outFile, []byte(config.DefaultConfigTemplate), 0644); err != nil {
				return fmt.Errorf("write vroom.yaml: %w", err)
			}

			fmt.Printf("✓ Created %s\n", outFile)
			fmt.Println("  Edit it to define your fleet, then run: vroom fleet")
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", ".", "Target directory for vroom.yaml")
	return cmd
}

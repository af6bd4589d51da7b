package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/config"
)

// SetupCmd returns the setup command that writes a starter config file
func SetupCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a default config file",
		Long: `Write the default configuration (key mappings, theme, mouse and seed
settings) to the config file so it can be edited.

Examples:
  # Create the config file if it does not exist yet
  tablero setup

  # Show where the config file lives
  tablero setup --check

  # Replace an existing config with the defaults
  tablero setup --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}

			_, statErr := os.Stat(path)
			exists := statErr == nil
			if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
				return fmt.Errorf("failed to check config: %w", statErr)
			}

			out := cmd.OutOrStdout()
			if checkFlag {
				status := "missing"
				if exists {
					status = "present"
				}
				fmt.Fprintf(out, "%s (%s)\n", path, status)
				return nil
			}

			if exists && !forceFlag {
				fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}

			if err := config.Default().Save(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Print the config path and whether it exists")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config")

	return cmd
}

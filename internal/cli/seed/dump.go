package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/seed"
)

// DumpCmd returns the seed dump subcommand
func DumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [SOURCE]",
		Short: "Print a seed as YAML",
		Long: `Load a seed source and print the columns it would put on the board.

SOURCE is "default", a .yaml/.yml/.json/.db/.sqlite file, or s3://bucket/key.
Without SOURCE the seed from the config file is used.

Examples:
  # Built-in board
  tablero seed dump default

  # Convert a SQLite seed to YAML
  tablero seed dump board.db > board.yaml

  # JSON output
  tablero seed dump s3://boards/team.yaml --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDump,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("using default configuration", "error", err)
		cfg = config.Default()
	}

	source := cfg.Seed.Source
	if len(args) == 1 {
		source = args[0]
	}

	loader := seed.Loader{S3: cfg.Seed.S3}
	cols, err := loader.Load(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("failed to load seed %q: %w", source, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(seed.Document{Columns: cols})
	}
	return seed.EncodeYAML(out, cols)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tablero/internal/cli/seed"
	"github.com/thenoetrevino/tablero/internal/cli/setup"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

// NewRootCmd builds the tablero command tree
func NewRootCmd() *cobra.Command {
	var opts launcher.Options

	rootCmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a terminal kanban board with drag and drop",
		Long: `Tablero is an in-memory kanban board for the terminal.

Cards and columns can be created, edited, deleted and rearranged with the
keyboard or by dragging them with the mouse. The board starts from a seed
(built-in, YAML, JSON, SQLite or an S3 object) and is not saved on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Overrides = changedFlags(cmd.Flags())
			return launcher.Launch(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.Seed, "seed", "", `Seed source: "default", a .yaml/.json/.db file or s3://bucket/key`)
	rootCmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "Disable mouse tracking")
	rootCmd.Flags().BoolVar(&opts.Debug, "debug", false, "Write debug records to the log file")

	rootCmd.AddCommand(seed.SeedCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	return rootCmd
}

// changedFlags collects the flags that were set explicitly on the command line
func changedFlags(fs *pflag.FlagSet) map[string]string {
	set := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	return set
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

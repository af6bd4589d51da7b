package seed

import (
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed parent command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect board seed sources",
	}

	cmd.AddCommand(DumpCmd())

	return cmd
}

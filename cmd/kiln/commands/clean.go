package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(c.app.Clean(cmd.Context(), configPath(cmd)))
		},
	}
}

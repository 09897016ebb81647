package commands

import "github.com/spf13/cobra"

func (c *CLI) newGeneratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the supported generators",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			c.app.Generators()
		},
	}
}

package commands

import "github.com/spf13/cobra"

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that CMake and the native build tools are on PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(c.app.Doctor(cmd.Context(), configPath(cmd)))
		},
	}
}

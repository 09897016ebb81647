package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build (--debug | --release | --both) -G <generator>",
		Short: "Generate the project and build the selected configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			release, _ := cmd.Flags().GetBool("release")
			both, _ := cmd.Flags().GetBool("both")
			buildType, err := domain.BuildTypeFromFlags(debug, release, both)
			if err != nil {
				return err
			}

			generator, _ := cmd.Flags().GetString("generator")
			clean, _ := cmd.Flags().GetBool("clean")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			timings, _ := cmd.Flags().GetBool("timings")

			return reported(c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath(cmd),
				BuildType:  buildType,
				Generator:  generator,
				Clean:      clean,
				DryRun:     dryRun,
				Timings:    timings,
			}))
		},
	}
	cmd.Flags().BoolP("debug", "d", false, "Build the Debug configuration")
	cmd.Flags().BoolP("release", "r", false, "Build the Release configuration")
	cmd.Flags().BoolP("both", "b", false, "Build Debug, then Release (multi-config generators only)")
	cmd.Flags().StringP("generator", "G", "", "Generator key, see 'kiln generators'")
	cmd.Flags().Bool("clean", false, "Remove the build directory before generating")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the planned commands without running them")
	cmd.Flags().Bool("timings", false, "Print how long each stage ran when the build stops")

	cmd.MarkFlagsMutuallyExclusive("debug", "release", "both")
	cmd.MarkFlagsOneRequired("debug", "release", "both")
	_ = cmd.MarkFlagRequired("generator")
	return cmd
}

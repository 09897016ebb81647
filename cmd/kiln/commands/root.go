// Package commands implements the CLI commands for kiln.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Generators()
	Doctor(ctx context.Context, configPath string) error
	Clean(ctx context.Context, configPath string) error
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Generate and build CMake projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Defined before the version flag so -v stays with verbose.
	rootCmd.PersistentFlags().StringP("config", "c", app.DefaultConfigPath, "Project configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every issued command")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		a.SetVerbose(verbose)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newGeneratorsCmd())
	rootCmd.AddCommand(c.newDoctorCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error writers for the root command. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// reportedError marks an error the reporter has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already presented by the application.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

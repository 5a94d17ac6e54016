// Package commands implements the command line interface of tldr.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tldr/internal/app"
	"go.trai.ch/tldr/internal/build"
	"go.trai.ch/zerr"
)

var (
	// ErrMissingCommand is returned when no command name was given.
	ErrMissingCommand = zerr.New("missing command name")
	// ErrTooManyArgs is returned when more than one command name was given.
	ErrTooManyArgs = zerr.New("expected a single command name")
)

// UsageError marks errors caused by invalid command line usage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err was caused by invalid command line usage.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// CLI represents the command line interface for tldr.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, name string, stdout io.Writer, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "tldr <command>",
		Short: "Simplified and community-driven man pages",
		Long: "Simplified and community-driven man pages.\n\n" +
			"Fetch the docs for command and render them to the terminal.",
		Args:          exactlyOneCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runE,
	}

	// -v is taken by --verbose, so these are defined before the default version flag.
	rootCmd.Flags().StringP("platform", "p", "", "Platform for the fallback lookup: osx or linux (default: host platform)")
	rootCmd.Flags().StringP("config", "c", "", "Path to the config file (default: user config dir)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log fetch attempts to stderr")
	rootCmd.Flags().String("log-format", "auto", "Log format: auto, pretty, or json")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for tldr"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	c.rootCmd = rootCmd
	return c
}

func exactlyOneCommand(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &UsageError{Err: ErrMissingCommand}
	case len(args) > 1:
		return &UsageError{Err: zerr.With(ErrTooManyArgs, "args", len(args))}
	default:
		return nil
	}
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	platform, _ := cmd.Flags().GetString("platform")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")

	return c.app.Run(cmd.Context(), args[0], cmd.OutOrStdout(), app.RunOptions{
		ConfigPath: configPath,
		Platform:   platform,
		Verbose:    verbose,
		LogFormat:  logFormat,
	})
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// UsageString returns the usage text of the root command.
func (c *CLI) UsageString() string {
	return c.rootCmd.UsageString()
}

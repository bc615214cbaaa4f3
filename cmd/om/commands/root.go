// Package commands implements the CLI commands for om.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/juspay/omnix-sub000/internal/app"
	"github.com/juspay/omnix-sub000/internal/build"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// CLI represents the command line interface for om.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	logFormat string
	formatter LogFormatter
}

// Application represents the application logic interface.
type Application interface {
	RunCI(ctx context.Context, opts app.RunOptions) error
	Matrix(ctx context.Context, opts app.MatrixOptions, w io.Writer) error
}

// LogFormatter switches the log output to JSON.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "om",
		Short:         "CI for nix flakes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", logFormatPretty, "Log format: pretty or json")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.applyLogFormat()
	}

	rootCmd.AddCommand(c.newCICmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogFormatter sets the logger configured by --log-format.
func (c *CLI) SetLogFormatter(f LogFormatter) {
	c.formatter = f
}

func (c *CLI) applyLogFormat() error {
	switch c.logFormat {
	case logFormatPretty, logFormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "format", c.logFormat)
	}
	if c.formatter != nil {
		c.formatter.SetJSON(c.logFormat == logFormatJSON)
	}
	return nil
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

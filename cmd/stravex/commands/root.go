// Package commands implements the CLI commands for stravex.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stravex/internal/app"
	"go.trai.ch/stravex/internal/build"
	"go.trai.ch/stravex/internal/core/domain"
)

// CLI represents the command line interface for stravex.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
	logJSON    bool
	setJSON    func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Entities(configPath string) (domain.Catalog, error)
}

// Option configures the CLI.
type Option func(*CLI)

// WithJSONLogs lets --log-json switch the logger to JSON output.
func WithJSONLogs(setJSON func(bool)) Option {
	return func(c *CLI) {
		c.setJSON = setJSON
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stravex",
		Short:         "Export STRAVIS reports by driving the desktop client",
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
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to "+domain.ConfigFileName+" (default: working directory, then user config directory)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write log lines as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.setJSON != nil {
			c.setJSON(c.logJSON)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newEntitiesCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

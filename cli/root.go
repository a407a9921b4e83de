package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blogem/iris/config"
)

// RootOptions holds global flags and the configuration resolved before any subcommand runs.
type RootOptions struct {
	Verbose  bool
	Database string

	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the IRIS CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "iris",
		Short: "IRIS - resource consumption tracking",
		Long:  "Records water, energy, gas, waste and compost measurements with a full audit trail.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.Database != "" {
				cfg.Database.Path = opts.Database
			}
			if opts.Verbose {
				cfg.Log.Level = "debug"
			}

			opts.Config = cfg
			opts.Logger = config.NewLogger(cfg.Log)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides IRIS_DB_PATH)")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// requireConfig guards subcommands run without the root pre-run
func (o *RootOptions) requireConfig() error {
	if o.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}
	return nil
}

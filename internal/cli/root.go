// Package cli wires configuration, logging and the database into the
// ia-admin commands.
package cli

import (
	"fmt"
	"os"

	"ia-admin/internal/config"
	"ia-admin/internal/logging"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the ia-admin command tree. Running it without a
// subcommand serves the API.
func NewRootCommand() *cobra.Command {
	serve := NewServeCommand()

	cmd := &cobra.Command{
		Use:           "ia-admin",
		Short:         "Internal audit administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads and validates the configuration and builds the logger.
func bootstrap() (*config.Config, *logging.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	lg := logging.New(logging.Config{Level: level, Component: logging.ComponentApp})
	logging.SetDefault(lg)
	return cfg, lg, nil
}

// Package cmd implements the portfolio command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahgnatheer/portfolio/internal/config"
	"github.com/hannahgnatheer/portfolio/internal/logging"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Renders and hosts a single-page personal portfolio",
		Long: `portfolio renders the portfolio page from its built-in content.
Use "serve" to host it over HTTP or "build" to write a static copy
that any file server can host.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")

	root.AddCommand(
		newServeCmd(&cfgFile),
		newBuildCmd(&cfgFile),
		newExportCmd(),
		newEjectCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration for cmd and builds the logger from it.
func setup(cmd *cobra.Command, cfgFile string) (config.Config, *zap.Logger, error) {
	cfg, used, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return config.Config{}, nil, err
	}
	if used != "" {
		logger.Debug("Using config file", zap.String("path", used))
	}
	return cfg, logger, nil
}

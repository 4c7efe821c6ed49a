package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hannahgnatheer/portfolio/internal/build"
	"github.com/hannahgnatheer/portfolio/internal/portfolio"
	"github.com/hannahgnatheer/portfolio/internal/render"
)

func newBuildCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Writes the page, stylesheet and assets to the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			renderOpts := []render.Option{render.WithLogger(logger)}
			if cfg.TemplatesDir != "" {
				renderOpts = append(renderOpts, render.WithDir(cfg.TemplatesDir))
			}
			r, err := render.New(renderOpts...)
			if err != nil {
				return err
			}

			err = build.Build(cmd.Context(), build.Options{
				OutputDir: cfg.OutputDir,
				AssetsDir: cfg.AssetsDir,
				SiteURL:   cfg.SiteURL,
				Year:      time.Now().Year(),
				Content:   portfolio.Default(),
				Renderer:  r,
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Site written to %s\n", cfg.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "public", "output directory")
	cmd.Flags().String("templates", "", "load templates from this directory instead of the built-in set")
	cmd.Flags().String("assets", "assets", "directory of downloadable files copied into the output")
	return cmd
}

package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahgnatheer/portfolio/internal/portfolio"
	"github.com/hannahgnatheer/portfolio/internal/render"
	"github.com/hannahgnatheer/portfolio/internal/server"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Renders the page and serves it over HTTP",
		Long: `serve renders the page once and serves the same bytes for every request.
With --dev and --templates, the template directory is watched and the page
is re-rendered whenever a template changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cfg.Dev {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			renderOpts := []render.Option{render.WithLogger(logger)}
			if cfg.TemplatesDir != "" {
				renderOpts = append(renderOpts, render.WithDir(cfg.TemplatesDir))
			}
			r, err := render.New(renderOpts...)
			if err != nil {
				return err
			}

			content := portfolio.Default()
			if err := portfolio.Validate(content); err != nil {
				return err
			}
			year := time.Now().Year()
			body, err := r.RenderContent(content, year, cfg.SiteURL)
			if err != nil {
				return err
			}

			srv := server.New(body, server.Options{
				Dev:       cfg.Dev,
				AssetsDir: cfg.AssetsDir,
				Logger:    logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Dev && cfg.TemplatesDir != "" {
				w, err := render.NewWatcher(cfg.TemplatesDir, render.DefaultDebounce, logger)
				if err != nil {
					return err
				}
				go func() {
					_ = w.Run(ctx, reloadPage(r, srv, content, year, cfg.SiteURL, logger))
				}()
				logger.Info("Watching templates", zap.String("dir", cfg.TemplatesDir))
			}

			return srv.Run(ctx, cfg.Addr())
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "port to serve the site on")
	cmd.Flags().Bool("dev", false, "development mode: debug logs, no caching, template reload")
	cmd.Flags().String("templates", "", "load templates from this directory instead of the built-in set")
	cmd.Flags().String("assets", "assets", "directory of downloadable files (CV, images)")
	return cmd
}

// reloadPage re-parses the templates and swaps the served page. A failed
// reload or render keeps the previous page.
func reloadPage(r *render.Renderer, srv *server.Server, content portfolio.Content, year int, siteURL string, logger *zap.Logger) func() {
	return func() {
		if err := r.Reload(); err != nil {
			logger.Warn("Template reload failed, keeping previous page", zap.Error(err))
			return
		}
		body, err := r.RenderContent(content, year, siteURL)
		if err != nil {
			logger.Warn("Re-render failed, keeping previous page", zap.Error(err))
			return
		}
		srv.SetPage(body)
		logger.Info("Page re-rendered", zap.Int("bytes", len(body)))
	}
}

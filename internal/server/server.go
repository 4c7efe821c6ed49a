// Package server hosts the rendered portfolio page over HTTP.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hannahgnatheer/portfolio/internal/render"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Dev bool
	// AssetsDir holds downloadable files (the CV and images). They are
	// served under /assets/ and, for files in its root, at /<name>.
	AssetsDir string
	Logger    *zap.Logger
}

type page struct {
	body []byte
	etag string
}

// Server serves one pre-rendered page. Every request for / gets the same
// bytes until SetPage swaps them.
type Server struct {
	engine    *gin.Engine
	logger    *zap.Logger
	dev       bool
	assetsDir string
	page      atomic.Pointer[page]
}

func New(body []byte, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine:    gin.New(),
		logger:    logger,
		dev:       opts.Dev,
		assetsDir: opts.AssetsDir,
	}
	s.SetPage(body)
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger, newClientHasher(), s.dev), securityHeaders())

	// Home page
	home := r.Group("/", cacheControl(s.dev, "no-cache"))
	home.GET("/", s.servePage)
	home.HEAD("/", s.servePage)
	home.GET("/index.html", s.servePage)

	r.Group("/", cacheControl(s.dev, "public, max-age=86400")).
		StaticFS("/static", http.FS(render.StaticFS()))

	if s.assetsDir != "" {
		assets := r.Group("/", cacheControl(s.dev, "public, max-age=3600"))
		assets.Static("/assets", s.assetsDir)
		r.NoRoute(cacheControl(s.dev, "public, max-age=3600"), s.serveRootAsset)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// SetPage replaces the page served at /.
func (s *Server) SetPage(body []byte) {
	sum := sha256.Sum256(body)
	s.page.Store(&page{
		body: body,
		etag: `"` + hex.EncodeToString(sum[:])[:16] + `"`,
	})
}

func (s *Server) servePage(c *gin.Context) {
	p := s.page.Load()
	c.Header("ETag", p.etag)
	if etagMatches(c.GetHeader("If-None-Match"), p.etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.body)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// serveRootAsset serves regular files from the root of the assets
// directory, so links like /Hannah_Natheer_CV.pdf keep working.
func (s *Server) serveRootAsset(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	name := path.Clean("/" + c.Request.URL.Path)
	if strings.Count(name, "/") != 1 || name == "/" {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	dir := http.Dir(s.assetsDir)
	f, err := dir.Open(name)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	info, err := f.Stat()
	f.Close()
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.FileFromFS(name, dir)
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Serving portfolio", zap.String("addr", addr), zap.Bool("dev", s.dev))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Package build exports the portfolio as a static directory that any file
// server can host.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hannahgnatheer/portfolio/internal/portfolio"
	"github.com/hannahgnatheer/portfolio/internal/render"
)

type Options struct {
	OutputDir string
	// AssetsDir is copied into the output root when it exists.
	AssetsDir string
	SiteURL   string
	Year      int
	Content   portfolio.Content
	Renderer  *render.Renderer
	Logger    *zap.Logger
}

// Build writes index.html, the stylesheet and the assets into OutputDir.
// The output directory is recreated from scratch.
func Build(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.OutputDir == "" {
		return fmt.Errorf("build: output directory is required")
	}
	if err := portfolio.Validate(opts.Content); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	r := opts.Renderer
	if r == nil {
		var err error
		if r, err = render.New(render.WithLogger(logger)); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}
	body, err := r.RenderContent(opts.Content, opts.Year, opts.SiteURL)
	if err != nil {
		return fmt.Errorf("build: render page: %w", err)
	}

	if err := checkOutputDir(opts.OutputDir, opts.AssetsDir, r.Dir()); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	logger.Info("Cleaning output directory", zap.String("dir", opts.OutputDir))
	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", opts.OutputDir, err)
	}

	if opts.AssetsDir != "" {
		if _, err := os.Stat(opts.AssetsDir); err == nil {
			logger.Info("Copying assets", zap.String("from", opts.AssetsDir))
			if err := copyDir(ctx, os.DirFS(opts.AssetsDir), opts.OutputDir); err != nil {
				return fmt.Errorf("failed to copy assets: %w", err)
			}
		} else if os.IsNotExist(err) {
			logger.Debug("Assets directory not found, skipping copy", zap.String("dir", opts.AssetsDir))
		} else {
			return fmt.Errorf("stat assets directory: %w", err)
		}
	}

	if err := copyDir(ctx, render.StaticFS(), filepath.Join(opts.OutputDir, "static")); err != nil {
		return fmt.Errorf("failed to copy stylesheet: %w", err)
	}

	index := filepath.Join(opts.OutputDir, "index.html")
	if err := os.WriteFile(index, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", index, err)
	}
	logger.Info("Site built", zap.String("index", index), zap.Int("bytes", len(body)))
	return nil
}

// ErrUnsafeOutputDir is returned when cleaning the output directory would
// delete inputs of the build or the working directory.
var ErrUnsafeOutputDir = errors.New("unsafe output directory")

// checkOutputDir refuses an output directory that is, or contains, the
// working directory, the assets directory or the template directory. The
// output may not sit inside the assets directory either, since the assets
// are copied into it.
func checkOutputDir(outputDir, assetsDir, templatesDir string) error {
	out, err := absPath(outputDir)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	if within(out, evalExisting(cwd)) {
		return fmt.Errorf("%w: %s contains the working directory %s", ErrUnsafeOutputDir, outputDir, cwd)
	}

	for _, in := range []struct{ name, dir string }{
		{"assets", assetsDir},
		{"templates", templatesDir},
	} {
		if in.dir == "" {
			continue
		}
		dir, err := absPath(in.dir)
		if err != nil {
			return err
		}
		if within(out, dir) {
			return fmt.Errorf("%w: %s contains the %s directory %s", ErrUnsafeOutputDir, outputDir, in.name, in.dir)
		}
		if in.name == "assets" && within(dir, out) {
			return fmt.Errorf("%w: %s is inside the assets directory %s", ErrUnsafeOutputDir, outputDir, in.dir)
		}
	}
	return nil
}

func absPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return evalExisting(abs), nil
}

// evalExisting resolves symlinks where the path exists and keeps it as is
// otherwise.
func evalExisting(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}

// within reports whether path is parent or below it.
func within(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyDir copies every regular file of src into dst, keeping the layout.
func copyDir(ctx context.Context, src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(src, path, target)
	})
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", target, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", name, target, err)
	}
	return out.Close()
}

// Package render turns portfolio content into the HTML page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/hannahgnatheer/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// EntryTemplate is the template executed to produce the whole page.
const EntryTemplate = "layout"

// BodyTemplate names the template that renders the body of section id.
func BodyTemplate(id string) string { return "section-" + id }

// StaticFS holds the stylesheet and other assets the page links to under
// /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"icon": icon,
	"section": func(p Page, s portfolio.Section) SectionView {
		return SectionView{Section: s, Page: p}
	},
}

// Renderer executes the page templates.
type Renderer struct {
	dir    string
	logger *zap.Logger

	mu   sync.RWMutex
	tmpl *template.Template
}

type Option func(*Renderer)

// WithDir loads templates from dir instead of the embedded set.
func WithDir(dir string) Option {
	return func(r *Renderer) { r.dir = dir }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir is the override template directory, or "" for the embedded set.
func (r *Renderer) Dir() string { return r.dir }

// Reload parses the templates again. On error the previous set stays active.
func (r *Renderer) Reload() error {
	var src fs.FS
	if r.dir != "" {
		src = os.DirFS(r.dir)
	} else {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return fmt.Errorf("embedded templates: %w", err)
		}
		src = sub
	}

	var t *template.Template
	t, err := template.New("page").Funcs(funcs).Funcs(template.FuncMap{
		"sectionBody": func(v SectionView) (template.HTML, error) {
			var buf bytes.Buffer
			if err := t.ExecuteTemplate(&buf, BodyTemplate(v.Section.ID), v.Page); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
	}).ParseFS(src, "*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if t.Lookup(EntryTemplate) == nil {
		return fmt.Errorf("parse templates: no %q template defined", EntryTemplate)
	}
	for _, s := range portfolio.Sections() {
		if t.Lookup(BodyTemplate(s.ID)) == nil {
			return fmt.Errorf("parse templates: no %q template for section %q", BodyTemplate(s.ID), s.ID)
		}
	}

	r.mu.Lock()
	r.tmpl = t
	r.mu.Unlock()

	source := r.dir
	if source == "" {
		source = "embedded"
	}
	r.logger.Debug("Templates loaded", zap.String("source", source))
	return nil
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	r.mu.RLock()
	t := r.tmpl
	r.mu.RUnlock()

	if err := t.ExecuteTemplate(w, EntryTemplate, page); err != nil {
		return fmt.Errorf("execute %s: %w", EntryTemplate, err)
	}
	return nil
}

// RenderBytes renders the page into memory, so a failed render never
// leaves half a document behind.
func (r *Renderer) RenderBytes(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderContent builds the page for content and renders it.
func (r *Renderer) RenderContent(content portfolio.Content, year int, siteURL string) ([]byte, error) {
	page, err := NewPage(content, year)
	if err != nil {
		return nil, err
	}
	page.SiteURL = siteURL
	return r.RenderBytes(page)
}

// EjectTemplates copies the embedded templates into dir so they can be
// edited and loaded back with WithDir.
func EjectTemplates(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}
	for _, e := range entries {
		data, err := fs.ReadFile(templateFS, "templates/"+e.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", e.Name(), err)
		}
	}
	return nil
}

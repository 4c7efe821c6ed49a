package render

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannahgnatheer/portfolio/internal/portfolio"
)

func renderDefault(t *testing.T) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	out, err := r.RenderContent(portfolio.Default(), 2025, "")
	require.NoError(t, err)
	return string(out)
}

func TestRenderIsIdempotent(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	first, err := r.RenderContent(portfolio.Default(), 2025, "https://example.com/")
	require.NoError(t, err)
	second, err := r.RenderContent(portfolio.Default(), 2025, "https://example.com/")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "rendering the same content twice must produce the same bytes")
}

func TestRenderSections(t *testing.T) {
	html := renderDefault(t)

	for _, id := range []string{"about", "skills", "projects", "experience", "education", "contact"} {
		assert.Contains(t, html, `<section id="`+id+`"`)
		assert.Contains(t, html, `href="#`+id+`"`)
	}
	assert.Contains(t, html, `<div id="top"></div>`)
	assert.Contains(t, html, `href="#top"`)
}

func TestRenderSkillGrid(t *testing.T) {
	html := renderDefault(t)

	assert.Equal(t, 3, strings.Count(html, `class="rounded-2xl p-4 glass"`))
	assert.Equal(t, 19, strings.Count(html, `class="skill `))
	assert.Less(t, strings.Index(html, ">Python<"), strings.Index(html, ">LLMs<"))
}

func TestRenderProjectLinks(t *testing.T) {
	html := renderDefault(t)

	assert.Equal(t, 3, strings.Count(html, `data-link="code"`))
	assert.Equal(t, 1, strings.Count(html, `data-link="paper"`))
	assert.NotContains(t, html, `data-link="demo"`)
	assert.NotContains(t, html, `href="#"`)
	assert.Equal(t, 7, strings.Count(html, `class="metric `))
}

func TestRenderOptionalProjectFields(t *testing.T) {
	c := portfolio.Default()
	c.Projects = []portfolio.Project{
		{Title: "Bare", Year: "2024", Description: "No links, no metrics.", Icon: "cpu"},
		{
			Title:       "Live",
			Year:        "2024",
			Description: "Has a demo.",
			Links:       &portfolio.Links{Demo: "https://demo.example.com"},
		},
	}

	r, err := New()
	require.NoError(t, err)
	out, err := r.RenderContent(c, 2025, "")
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, `class="metric `)
	assert.Equal(t, 1, strings.Count(html, `data-link="demo"`))
	assert.Contains(t, html, `href="https://demo.example.com"`)
	assert.Equal(t, 2, strings.Count(html, `class="project `))
}

func TestRenderProfile(t *testing.T) {
	html := renderDefault(t)

	assert.Contains(t, html, "<title>Hannah Genneath Natheer | Portfolio</title>")
	assert.Contains(t, html, "<strong>machine learning</strong>")
	assert.Contains(t, html, "<strong>Cardiff Metropolitan University</strong>")
	assert.Contains(t, html, `href="mailto:hannahnatheer9@gmail.com"`)
	assert.Contains(t, html, `href="/Hannah_Natheer_CV.pdf"`)
	assert.Contains(t, html, "&copy; 2025 Hannah Genneath Natheer")
	assert.Contains(t, html, "MSc Data Science Student of the Year (Cardiff Met)")
	assert.NotContains(t, html, "**")
}

func TestRenderCanonicalURL(t *testing.T) {
	assert.NotContains(t, renderDefault(t), `rel="canonical"`)

	r, err := New()
	require.NoError(t, err)
	out, err := r.RenderContent(portfolio.Default(), 2025, "https://hannah.example/")
	require.NoError(t, err)
	assert.Contains(t, string(out), `<link rel="canonical" href="https://hannah.example/">`)
}

func TestRendererFromDirAndReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EjectTemplates(dir))

	r, err := New(WithDir(dir))
	require.NoError(t, err)
	assert.Equal(t, dir, r.Dir())

	page, err := NewPage(portfolio.Default(), 2025)
	require.NoError(t, err)
	before, err := r.RenderBytes(page)
	require.NoError(t, err)
	assert.Equal(t, renderDefault(t), string(before))

	footer := filepath.Join(dir, "footer.html")
	require.NoError(t, os.WriteFile(footer, []byte(`{{define "footer"}}<footer>custom {{.Year}}</footer>{{end}}`), 0o644))
	require.NoError(t, r.Reload())

	after, err := r.RenderBytes(page)
	require.NoError(t, err)
	assert.Contains(t, string(after), "<footer>custom 2025</footer>")
}

func TestReloadKeepsPreviousTemplatesOnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EjectTemplates(dir))
	r, err := New(WithDir(dir))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.html"), []byte(`{{define "hero"}}{{.Broken`), 0o644))
	require.Error(t, r.Reload())

	page, err := NewPage(portfolio.Default(), 2025)
	require.NoError(t, err)
	_, err = r.RenderBytes(page)
	assert.NoError(t, err)
}

func TestNewFailsWithoutLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.html"), []byte(`{{define "other"}}x{{end}}`), 0o644))

	_, err := New(WithDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "layout" template`)
}

func TestNewFailsWithoutSectionBody(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EjectTemplates(dir))

	bodies := filepath.Join(dir, "bodies.html")
	data, err := os.ReadFile(bodies)
	require.NoError(t, err)
	renamed := strings.Replace(string(data), `{{define "section-contact"}}`, `{{define "contact"}}`, 1)
	require.NotEqual(t, string(data), renamed)
	require.NoError(t, os.WriteFile(bodies, []byte(renamed), 0o644))

	_, err = New(WithDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "section-contact" template for section "contact"`)
}

func TestRenderMultiParagraphMarkdown(t *testing.T) {
	c := portfolio.Default()
	c.Profile.About = "First paragraph.\n\nSecond paragraph."
	c.Profile.Headline = "Line one.\n\nLine two."
	c.Projects[0].Description = "Does a thing.\n\nThen another."

	r, err := New()
	require.NoError(t, err)
	out, err := r.RenderContent(c, 2025, "")
	require.NoError(t, err)
	html := string(out)

	for _, p := range []string{"First paragraph.", "Second paragraph.", "Line one.", "Line two.", "Does a thing.", "Then another."} {
		assert.Contains(t, html, "<p>"+p+"</p>")
	}
	assert.NotRegexp(t, `<p[^>]*>\s*<p>`, html, "paragraphs must not nest")
}

func TestStaticFS(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), "styles.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".glass")
}

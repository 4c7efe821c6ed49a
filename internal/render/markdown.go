package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown converts authored Markdown into sanitized HTML. It is safe for
// concurrent use.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// Block renders src as one or more block elements.
func (m *Markdown) Block(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(m.policy.SanitizeBytes(buf.Bytes())), nil
}

// Inline renders a single paragraph without the wrapping <p> element, for
// text that sits inside an element the template already provides.
func (m *Markdown) Inline(src string) (template.HTML, error) {
	out, err := m.Block(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s), nil
}

// Plain renders src and strips every tag, leaving single-spaced text.
func (m *Markdown) Plain(src string) (string, error) {
	out, err := m.Block(src)
	if err != nil {
		return "", err
	}
	text := html.UnescapeString(m.strict.Sanitize(string(out)))
	return strings.Join(strings.Fields(text), " "), nil
}

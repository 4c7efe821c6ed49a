package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownInline(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Inline("Focused on **machine learning** & forecasting.")
	require.NoError(t, err)
	assert.Equal(t, "Focused on <strong>machine learning</strong> &amp; forecasting.", string(out))
}

func TestMarkdownInlineKeepsMultipleParagraphs(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Inline("one\n\ntwo")
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>\n<p>two</p>", string(out))
}

func TestMarkdownSanitizes(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Block(`hello <script>alert(1)</script> [x](javascript:alert(1))`)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.NotContains(t, string(out), "javascript:")
}

func TestMarkdownPlain(t *testing.T) {
	md := NewMarkdown()

	out, err := md.Plain("Engineer & student focused on **ML**,\n**forecasting**.")
	require.NoError(t, err)
	assert.Equal(t, "Engineer & student focused on ML, forecasting.", out)
}

func TestIcon(t *testing.T) {
	assert.Contains(t, string(icon("github", "w-4 h-4")), `class="w-4 h-4"`)
	assert.Empty(t, icon("no-such-icon", "w-4"))
	for name := range icons {
		assert.Contains(t, string(icon(name, "")), "<svg", name)
	}
}

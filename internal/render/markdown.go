package render

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// newMarkdown builds the shared goldmark instance: GitHub Flavored
// Markdown, chroma-backed fenced-code highlighting, and raw HTML passthrough
// so concept spans injected before conversion survive.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(),
		),
	)
}

// renderMarkdown converts a Markdown body to HTML. Conversion failures
// degrade to an escaped plaintext paragraph; body content is never lost.
func (r *Renderer) renderMarkdown(body string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "<p>" + html.EscapeString(body) + "</p>"
	}
	return buf.String()
}

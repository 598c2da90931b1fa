package views

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// md renders bio text. Raw HTML in the source is escaped.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Typographer,
		extension.Linkify,
	),
)

// Markdown renders src to HTML. If conversion fails the source is emitted
// as escaped text.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(buf.String())
}

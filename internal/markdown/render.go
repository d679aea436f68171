package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(NewTransformer(StripDataURL), 999),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

var defaultMarkdown = New()

// Render converts the given markdown source to HTML. Raw HTML blocks,
// dangerous links and inlined data URLs are dropped.
func Render(source string) (template.HTML, error) {
	var buff bytes.Buffer

	if err := defaultMarkdown.Convert([]byte(source), &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}

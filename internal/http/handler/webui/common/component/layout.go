package component

import (
	"context"
	"embed"
	"html/template"
	"io/fs"

	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templates embed.FS

var layout = template.Must(template.ParseFS(templates, "templates/layout.gohtml"))

type LayoutVModel struct {
	Title  string
	Notice string
	Error  string

	HomeURL  string
	WriteURL string
}

func NewLayoutVModel(ctx context.Context, title string) LayoutVModel {
	return LayoutVModel{
		Title:    title,
		HomeURL:  string(BaseURL(ctx, WithPath("/"))),
		WriteURL: string(BaseURL(ctx, WithPath("/write"))),
	}
}

// NewPage parses the given files on top of the shared layout. The files
// must define a "content" template.
func NewPage(fsys fs.FS, patterns ...string) (*template.Template, error) {
	page, err := layout.Clone()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	page, err = page.ParseFS(fsys, patterns...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

func MustPage(fsys fs.FS, patterns ...string) *template.Template {
	page, err := NewPage(fsys, patterns...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return page
}

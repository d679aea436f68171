package component

import (
	"github.com/a-h/templ"
)

var errorPage = MustPage(templates, "templates/error.gohtml")

type LinkItem struct {
	URL   string
	Label string
}

type ErrorPageVModel struct {
	Layout  LayoutVModel
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return templ.FromGoHTML(errorPage, vmodel)
}

package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var (
	articleListPage = commonComp.MustPage(templates, "templates/list.gohtml")
	articlePage     = commonComp.MustPage(templates, "templates/article.gohtml")
	writePage       = commonComp.MustPage(templates, "templates/write.gohtml")
)

type ArticleItem struct {
	Title   string
	Content string
	ReadURL string
	EditURL string
}

type ArticleListPageVModel struct {
	Layout   commonComp.LayoutVModel
	Articles []ArticleItem
}

func ArticleListPage(vmodel ArticleListPageVModel) templ.Component {
	return templ.FromGoHTML(articleListPage, vmodel)
}

type ArticlePageVModel struct {
	Layout  commonComp.LayoutVModel
	Title   string
	Content template.HTML
	EditURL string
}

func ArticlePage(vmodel ArticlePageVModel) templ.Component {
	return templ.FromGoHTML(articlePage, vmodel)
}

type WritePageVModel struct {
	Layout commonComp.LayoutVModel
	// ArticleID is empty when writing a new article
	ArticleID string
	Title     string
	Content   string
	ActionURL string
}

func WritePage(vmodel WritePageVModel) templ.Component {
	return templ.FromGoHTML(writePage, vmodel)
}

package article

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/handler/webui/article/component"
	"github.com/bornholm/scribe/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) getArticleListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillArticleListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := saveSession(w, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.ArticleListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillArticleListPageViewModel(r *http.Request) (*component.ArticleListPageVModel, error) {
	vmodel := &component.ArticleListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillArticleListPageVModelArticles,
		h.fillArticleListPageVModelLayout,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticleListPageVModelArticles(ctx context.Context, vmodel *component.ArticleListPageVModel, r *http.Request) error {
	limit := h.listLimit

	articles, err := h.store.QueryArticles(ctx, port.QueryArticlesOptions{
		Limit: &limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Articles = make([]component.ArticleItem, 0, len(articles))
	for _, a := range articles {
		vmodel.Articles = append(vmodel.Articles, component.ArticleItem{
			Title:   a.Title(),
			Content: a.Content(),
			ReadURL: string(commonComp.BaseURL(ctx, commonComp.WithPath("/articles", string(a.ID())))),
			EditURL: string(commonComp.BaseURL(ctx, commonComp.WithPath("/write"), commonComp.WithValues("id", string(a.ID())))),
		})
	}

	return nil
}

func (h *Handler) fillArticleListPageVModelLayout(ctx context.Context, vmodel *component.ArticleListPageVModel, r *http.Request) error {
	vmodel.Layout = newLayoutVModel(ctx, "List of Articles")
	return nil
}

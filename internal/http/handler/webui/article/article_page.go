package article

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/handler/webui/article/component"
	"github.com/bornholm/scribe/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
	"github.com/bornholm/scribe/internal/markdown"
	"github.com/pkg/errors"
)

func (h *Handler) getArticlePage(w http.ResponseWriter, r *http.Request) {
	ctx := slogx.WithAttrs(r.Context(), slog.String("article_id", r.PathValue("id")))
	r = r.WithContext(ctx)

	vmodel, err := h.fillArticlePageViewModel(r)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrInvalidID) {
			slog.DebugContext(ctx, "article not found, redirecting to the list", slogx.Error(err))

			// The session is left untouched so that pending flashes survive
			http.Redirect(w, r, string(commonComp.BaseURL(ctx, commonComp.WithPath("/"))), http.StatusNotFound)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := saveSession(w, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	articlePage := component.ArticlePage(*vmodel)

	templ.Handler(articlePage).ServeHTTP(w, r)
}

func (h *Handler) fillArticlePageViewModel(r *http.Request) (*component.ArticlePageVModel, error) {
	vmodel := &component.ArticlePageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillArticlePageVModelArticle,
		h.fillArticlePageVModelLayout,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillArticlePageVModelArticle(ctx context.Context, vmodel *component.ArticlePageVModel, r *http.Request) error {
	articleID := model.ArticleID(r.PathValue("id"))

	article, err := h.store.GetArticleByID(ctx, articleID)
	if err != nil {
		return errors.WithStack(err)
	}

	content, err := markdown.Render(article.Content())
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Title = article.Title()
	vmodel.Content = content
	vmodel.EditURL = string(commonComp.BaseURL(ctx, commonComp.WithPath("/write"), commonComp.WithValues("id", string(article.ID()))))

	return nil
}

func (h *Handler) fillArticlePageVModelLayout(ctx context.Context, vmodel *component.ArticlePageVModel, r *http.Request) error {
	vmodel.Layout = newLayoutVModel(ctx, vmodel.Title)
	return nil
}

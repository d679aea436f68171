package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/handler/webui/article/component"
	"github.com/bornholm/scribe/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
	"github.com/bornholm/scribe/internal/http/session"
	"github.com/pkg/errors"
)

func (h *Handler) getWritePage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillWritePageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := saveSession(w, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	writePage := component.WritePage(*vmodel)

	templ.Handler(writePage).ServeHTTP(w, r)
}

func (h *Handler) fillWritePageViewModel(r *http.Request) (*component.WritePageVModel, error) {
	vmodel := &component.WritePageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillWritePageVModelDraft,
		h.fillWritePageVModelArticle,
		h.fillWritePageVModelLayout,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

// fillWritePageVModelDraft restores the values of a previously rejected
// submission. Drafts are consumed whether they are used or not.
func (h *Handler) fillWritePageVModelDraft(ctx context.Context, vmodel *component.WritePageVModel, r *http.Request) error {
	sess := session.FromContext(ctx)
	if sess == nil {
		return errors.New("could not retrieve session from context")
	}

	vmodel.Title, _ = sess.Get(keyDraftTitle)
	vmodel.Content, _ = sess.Get(keyDraftContent)

	return nil
}

// fillWritePageVModelArticle switches the form to edit mode when the id
// query parameter resolves to an article. Unknown or malformed ids fall
// back to draft mode.
func (h *Handler) fillWritePageVModelArticle(ctx context.Context, vmodel *component.WritePageVModel, r *http.Request) error {
	rawID := r.URL.Query().Get(fieldID)
	if rawID == "" {
		return nil
	}

	article, err := h.store.GetArticleByID(ctx, model.ArticleID(rawID))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrInvalidID) {
			slog.DebugContext(ctx, "could not find article to edit, falling back to draft mode", slog.String("article_id", rawID), slogx.Error(err))
			return nil
		}

		return errors.WithStack(err)
	}

	vmodel.ArticleID = string(article.ID())
	vmodel.Title = article.Title()
	vmodel.Content = article.Content()

	return nil
}

func (h *Handler) fillWritePageVModelLayout(ctx context.Context, vmodel *component.WritePageVModel, r *http.Request) error {
	title := "Write a new article"
	if vmodel.ArticleID != "" {
		title = fmt.Sprintf("Update %s", vmodel.Title)
	}

	vmodel.Layout = newLayoutVModel(ctx, title)
	vmodel.ActionURL = string(commonComp.BaseURL(ctx, commonComp.WithPath("/write")))

	return nil
}

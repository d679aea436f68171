package article

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
	"github.com/bornholm/scribe/internal/http/session"
	"github.com/bornholm/scribe/internal/metrics"
	"github.com/pkg/errors"
)

func (h *Handler) handleWrite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess := session.FromContext(ctx)
	if sess == nil {
		common.HandleError(w, r, errors.New("could not retrieve session from context"))
		return
	}

	form, err := parseWriteForm(r)
	if err != nil {
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		slog.DebugContext(ctx, "invalid article submission", slog.Any("missing_fields", validationErr.MissingFields))
		metrics.ArticleWrites.WithLabelValues(metrics.WriteOutcomeInvalid).Inc()

		sess.Flash(keyError, messageMissingFields)

		if form.Title != "" {
			sess.Flash(keyDraftTitle, form.Title)
		}

		if form.Content != "" {
			sess.Flash(keyDraftContent, form.Content)
		}

		if _, err := sess.Commit(); err != nil {
			// Drafts too large for the cookie are dropped, the error is kept
			slog.WarnContext(ctx, "could not keep article draft in session", slogx.Error(errors.WithStack(err)))

			sess.Unset(keyDraftTitle)
			sess.Unset(keyDraftContent)
		}

		if err := redirect(w, r, redirectBackURL(r, form.ID), http.StatusBadRequest); err != nil {
			common.HandleError(w, r, errors.WithStack(err))
		}

		return
	}

	if form.ID == "" {
		h.createArticle(w, r, form)
		return
	}

	h.replaceArticle(w, r, form)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request, form *WriteForm) {
	ctx := r.Context()

	article, err := h.store.CreateArticle(ctx, form.Title, form.Content)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.InfoContext(ctx, "article created", slog.String("article_id", string(article.ID())))
	metrics.ArticleWrites.WithLabelValues(metrics.WriteOutcomeCreated).Inc()

	session.FromContext(ctx).Flash(keyNotice, messageArticleCreated)

	home := string(commonComp.BaseURL(ctx, commonComp.WithPath("/")))

	if err := redirect(w, r, home, http.StatusCreated); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
	}
}

func (h *Handler) replaceArticle(w http.ResponseWriter, r *http.Request, form *WriteForm) {
	ctx := slogx.WithAttrs(r.Context(), slog.String("article_id", string(form.ID)))
	r = r.WithContext(ctx)

	sess := session.FromContext(ctx)

	article, err := h.store.ReplaceArticle(ctx, form.ID, form.Title, form.Content)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrInvalidID) {
			slog.DebugContext(ctx, "could not find article to update", slogx.Error(err))
			metrics.ArticleWrites.WithLabelValues(metrics.WriteOutcomeMissing).Inc()

			sess.Flash(keyError, messageArticleNotFound)

			home := string(commonComp.BaseURL(ctx, commonComp.WithPath("/")))

			if err := redirect(w, r, home, http.StatusNotFound); err != nil {
				common.HandleError(w, r, errors.WithStack(err))
			}

			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.InfoContext(ctx, "article updated")
	metrics.ArticleWrites.WithLabelValues(metrics.WriteOutcomeUpdated).Inc()

	sess.Flash(keyNotice, messageArticleUpdated)

	editURL := string(commonComp.BaseURL(ctx, commonComp.WithPath("/write"), commonComp.WithValues(fieldID, string(article.ID()))))

	if err := redirect(w, r, editURL, http.StatusFound); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
	}
}

// redirectBackURL returns the referrer when it points to this host, the
// write form otherwise.
func redirectBackURL(r *http.Request, id model.ArticleID) string {
	if referer := r.Referer(); referer != "" {
		u, err := url.Parse(referer)
		if err == nil && isSameHost(r, u) {
			return u.String()
		}
	}

	funcs := []commonComp.MutationFunc{commonComp.WithPath("/write")}

	if id != "" {
		if _, err := model.ParseArticleID(string(id)); err == nil {
			funcs = append(funcs, commonComp.WithValues(fieldID, string(id)))
		}
	}

	return string(commonComp.BaseURL(r.Context(), funcs...))
}

func isSameHost(r *http.Request, u *url.URL) bool {
	switch u.Scheme {
	case "", "http", "https":
	default:
		return false
	}

	if u.Host == "" {
		// Relative reference
		return u.Scheme == "" && u.Opaque == ""
	}

	return u.Host == r.Host
}

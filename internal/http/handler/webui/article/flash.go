package article

import (
	"context"
	"net/http"

	commonComp "github.com/bornholm/scribe/internal/http/handler/webui/common/component"
	"github.com/bornholm/scribe/internal/http/session"
	"github.com/pkg/errors"
)

const (
	keyNotice       = "notice"
	keyError        = "error"
	keyDraftTitle   = "write:title"
	keyDraftContent = "write:content"
)

const (
	messageArticleCreated  = "Article created successfully"
	messageArticleUpdated  = "Article updated successfully"
	messageArticleNotFound = "Article not found"
	messageMissingFields   = "Missing title or content"
)

// newLayoutVModel consumes the notice and error flashes of the current
// session. Both are rendered when both are present.
func newLayoutVModel(ctx context.Context, title string) commonComp.LayoutVModel {
	layout := commonComp.NewLayoutVModel(ctx, title)

	sess := session.FromContext(ctx)
	if sess == nil {
		return layout
	}

	layout.Notice, _ = sess.Get(keyNotice)
	layout.Error, _ = sess.Get(keyError)

	return layout
}

func saveSession(w http.ResponseWriter, r *http.Request) error {
	sess := session.FromContext(r.Context())
	if sess == nil {
		return errors.New("could not retrieve session from context")
	}

	if err := sess.Save(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// redirect saves the session then redirects with the given status, which is
// not necessarily a 3xx one.
func redirect(w http.ResponseWriter, r *http.Request, location string, statusCode int) error {
	if err := saveSession(w, r); err != nil {
		return errors.WithStack(err)
	}

	http.Redirect(w, r, location, statusCode)

	return nil
}

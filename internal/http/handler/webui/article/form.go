package article

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

const (
	fieldID      = "id"
	fieldTitle   = model.ArticleFieldTitle
	fieldContent = model.ArticleFieldContent
)

// WriteForm is the typed content of an article submission. An empty ID
// means a new article.
type WriteForm struct {
	ID      model.ArticleID
	Title   string
	Content string
}

type ValidationError struct {
	MissingFields []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing fields: %s", strings.Join(e.MissingFields, ", "))
}

// parseWriteForm reads the submitted fields. On a *ValidationError the
// returned form still holds what was submitted.
func parseWriteForm(r *http.Request) (*WriteForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.WithStack(common.NewHTTPError(http.StatusBadRequest))
	}

	form := &WriteForm{
		ID:      model.ArticleID(strings.TrimSpace(r.PostFormValue(fieldID))),
		Title:   r.PostFormValue(fieldTitle),
		Content: r.PostFormValue(fieldContent),
	}

	if missing := model.MissingArticleFields(form.Title, form.Content); len(missing) > 0 {
		return form, &ValidationError{MissingFields: missing}
	}

	return form, nil
}

package model

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

type ArticleID string

func NewArticleID() ArticleID {
	return ArticleID(xid.New().String())
}

// ParseArticleID checks that the given raw value is a well-formed
// article identifier and returns it in its canonical form.
func ParseArticleID(raw string) (ArticleID, error) {
	id, err := xid.FromString(raw)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse article id '%s'", raw)
	}

	return ArticleID(id.String()), nil
}

type Article interface {
	WithID[ArticleID]

	Title() string
	Content() string
}

type PersistedArticle interface {
	Article
	WithLifecycle
}

type BaseArticle struct {
	id      ArticleID
	title   string
	content string
}

// ID implements [Article].
func (a *BaseArticle) ID() ArticleID {
	return a.id
}

// Title implements [Article].
func (a *BaseArticle) Title() string {
	return a.title
}

// Content implements [Article].
func (a *BaseArticle) Content() string {
	return a.content
}

func NewArticle(id ArticleID, title string, content string) *BaseArticle {
	return &BaseArticle{
		id:      id,
		title:   title,
		content: content,
	}
}

var _ Article = &BaseArticle{}

const (
	ArticleFieldTitle   = "title"
	ArticleFieldContent = "content"
)

// MissingArticleFields returns the names of the blank fields of an
// article. Whitespace-only values count as blank.
func MissingArticleFields(title string, content string) []string {
	missing := make([]string, 0)

	if strings.TrimSpace(title) == "" {
		missing = append(missing, ArticleFieldTitle)
	}

	if strings.TrimSpace(content) == "" {
		missing = append(missing, ArticleFieldContent)
	}

	return missing
}

package port

import (
	"context"

	"github.com/bornholm/scribe/internal/core/model"
)

type ArticleStore interface {
	// QueryArticles returns at most opts.Limit articles, in store order
	QueryArticles(ctx context.Context, opts QueryArticlesOptions) ([]model.PersistedArticle, error)

	// GetArticleByID returns the article with the given id, port.ErrNotFound if
	// it does not exist or port.ErrInvalidID if the id is malformed
	GetArticleByID(ctx context.Context, id model.ArticleID) (model.PersistedArticle, error)

	// CreateArticle persists a new article. Its id is assigned by the store.
	CreateArticle(ctx context.Context, title string, content string) (model.PersistedArticle, error)

	// ReplaceArticle replaces the title and content of an existing article
	ReplaceArticle(ctx context.Context, id model.ArticleID, title string, content string) (model.PersistedArticle, error)

	// CountArticles returns the total number of stored articles
	CountArticles(ctx context.Context) (int64, error)
}

type QueryArticlesOptions struct {
	Limit *int
}

package gorm

import (
	"time"

	"github.com/bornholm/scribe/internal/core/model"
)

type Article struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Title   string
	Content string
}

type wrappedArticle struct {
	a *Article
}

// ID implements [model.PersistedArticle].
func (w *wrappedArticle) ID() model.ArticleID {
	return model.ArticleID(w.a.ID)
}

// Title implements [model.PersistedArticle].
func (w *wrappedArticle) Title() string {
	return w.a.Title
}

// Content implements [model.PersistedArticle].
func (w *wrappedArticle) Content() string {
	return w.a.Content
}

// CreatedAt implements [model.PersistedArticle].
func (w *wrappedArticle) CreatedAt() time.Time {
	return w.a.CreatedAt
}

// UpdatedAt implements [model.PersistedArticle].
func (w *wrappedArticle) UpdatedAt() time.Time {
	return w.a.UpdatedAt
}

var _ model.PersistedArticle = &wrappedArticle{}

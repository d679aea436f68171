package gorm

import (
	"context"

	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// QueryArticles implements [port.ArticleStore].
func (s *Store) QueryArticles(ctx context.Context, opts port.QueryArticlesOptions) ([]model.PersistedArticle, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var articles []*Article

	// rowid follows insertion order
	query := db.Model(&Article{}).Order("rowid")

	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}

	if err := query.Find(&articles).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedArticles := make([]model.PersistedArticle, 0, len(articles))
	for _, a := range articles {
		wrappedArticles = append(wrappedArticles, &wrappedArticle{a})
	}

	return wrappedArticles, nil
}

// GetArticleByID implements [port.ArticleStore].
func (s *Store) GetArticleByID(ctx context.Context, id model.ArticleID) (model.PersistedArticle, error) {
	id, err := model.ParseArticleID(string(id))
	if err != nil {
		return nil, errors.WithStack(port.ErrInvalidID)
	}

	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	article, err := findArticle(db, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{article}, nil
}

// CreateArticle implements [port.ArticleStore].
func (s *Store) CreateArticle(ctx context.Context, title string, content string) (model.PersistedArticle, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	article := &Article{
		ID:      string(model.NewArticleID()),
		Title:   title,
		Content: content,
	}

	if err := db.Create(article).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{article}, nil
}

// ReplaceArticle implements [port.ArticleStore].
func (s *Store) ReplaceArticle(ctx context.Context, id model.ArticleID, title string, content string) (model.PersistedArticle, error) {
	id, err := model.ParseArticleID(string(id))
	if err != nil {
		return nil, errors.WithStack(port.ErrInvalidID)
	}

	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var article *Article

	// The update comes first so that the transaction takes the write lock
	// before reading
	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Article{}).Where("id = ?", string(id)).Updates(map[string]any{
			"title":   title,
			"content": content,
		})
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		updated, err := findArticle(tx, id)
		if err != nil {
			return errors.WithStack(err)
		}

		article = updated

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArticle{article}, nil
}

// CountArticles implements [port.ArticleStore].
func (s *Store) CountArticles(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.Model(&Article{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

func findArticle(db *gorm.DB, id model.ArticleID) (*Article, error) {
	var article Article

	if err := db.First(&article, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &article, nil
}

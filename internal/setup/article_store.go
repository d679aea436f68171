package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/scribe/internal/adapter/gorm"
	"github.com/bornholm/scribe/internal/config"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/pkg/errors"
)

// NewArticleStoreFromConfig returns the article store shared by the
// whole process. The article collection is migrated before first use.
func NewArticleStoreFromConfig(ctx context.Context, conf *config.Config) (port.ArticleStore, error) {
	store, err := getArticleStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
}

var getArticleStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create gorm database from config")
	}

	store := gorm.NewStore(db)

	if err := store.Migrate(ctx); err != nil {
		return nil, errors.Wrap(err, "could not migrate article store")
	}

	slog.DebugContext(ctx, "article store ready")

	return store, nil
})

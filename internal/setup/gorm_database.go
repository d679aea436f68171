package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/scribe/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	dialector := gormlite.Open(conf.Storage.Database.URL)

	var logLevel logger.LogLevel
	switch conf.Logger.Level {
	case slog.LevelError:
		logLevel = logger.Error
	case slog.LevelWarn:
		logLevel = logger.Warn
	case slog.LevelInfo:
		logLevel = logger.Info
	default:
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not open database")
	}

	if conf.Logger.Level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	maxOpenConns := conf.Storage.Database.MaxOpenConns
	if maxOpenConns < 1 {
		maxOpenConns = 1
	}

	internalDB.SetMaxOpenConns(maxOpenConns)

	if err := internalDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "could not reach database")
	}

	// The journal mode is stored in the database file and applies to every
	// connection of the pool. Each connection waits on a locked database
	// with the driver's default busy timeout.
	if err := db.Exec("PRAGMA journal_mode=wal").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
})

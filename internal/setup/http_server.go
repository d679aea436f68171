package setup

import (
	"context"

	"github.com/bornholm/scribe/internal/config"
	"github.com/bornholm/scribe/internal/http"
	"github.com/bornholm/scribe/internal/http/handler/metrics"
	"github.com/bornholm/scribe/internal/http/handler/webui"
	"github.com/bornholm/scribe/internal/http/handler/webui/article"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	articleStore, err := getArticleStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create article store from config")
	}

	sessions, err := getSessionCodecFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session codec from config")
	}

	if err := registerArticleMetrics(articleStore); err != nil {
		return nil, errors.Wrap(err, "could not register article metrics")
	}

	webui := webui.NewHandler(
		articleStore, sessions,
		article.WithWriteMiddlewares(getWriteMiddlewaresFromConfig(ctx, conf)...),
	)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", webui),
	}

	// Create HTTP server

	server := http.NewServer(options...)

	return server, nil
}

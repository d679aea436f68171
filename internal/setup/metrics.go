package setup

import (
	"github.com/bornholm/scribe/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func registerArticleMetrics(counter metrics.ArticleCounter) error {
	if err := prometheus.Register(metrics.NewArticleCollector(counter)); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			return nil
		}

		return errors.WithStack(err)
	}

	return nil
}

package metrics

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameArticleWrites   = "article_writes"
	LabelWriteOutcome   = "outcome"
	WriteOutcomeCreated = "created"
	WriteOutcomeUpdated = "updated"
	WriteOutcomeInvalid = "invalid"
	WriteOutcomeMissing = "missing"
)

var ArticleWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameArticleWrites,
		Help:      "Article form submissions by outcome",
		Namespace: Namespace,
	},
	[]string{LabelWriteOutcome},
)

const NameArticles = "articles"

type ArticleCounter interface {
	CountArticles(ctx context.Context) (int64, error)
}

// ArticleCollector reports the number of stored articles, counted on each
// scrape.
type ArticleCollector struct {
	counter ArticleCounter
	desc    *prometheus.Desc
}

// Describe implements prometheus.Collector.
func (c *ArticleCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *ArticleCollector) Collect(ch chan<- prometheus.Metric) {
	count, err := c.counter.CountArticles(context.Background())
	if err != nil {
		slog.Error("could not count articles", slogx.Error(errors.WithStack(err)))
		return
	}

	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(count))
}

func NewArticleCollector(counter ArticleCounter) *ArticleCollector {
	return &ArticleCollector{
		counter: counter,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", NameArticles),
			"Number of stored articles",
			nil, nil,
		),
	}
}

var _ prometheus.Collector = &ArticleCollector{}

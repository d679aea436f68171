package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSessionDecodeFailures = "session_decode_failures"
)

var SessionDecodeFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSessionDecodeFailures,
		Help:      "Session cookies discarded because they could not be verified",
		Namespace: Namespace,
	},
)

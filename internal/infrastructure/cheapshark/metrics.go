package cheapshark

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gamedeals/internal/domain"
)

const outcomeSuccess = "success"

//nolint:gochecknoglobals
var (
	fetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamedeals",
		Subsystem: "cheapshark",
		Name:      "fetch_attempts_total",
		Help:      "Deal fetch attempts by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gamedeals",
		Subsystem: "cheapshark",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of deal fetch attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"strategy"})
)

func observeAttempt(strategy string, err error, elapsed time.Duration) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = "error"
		if code, ok := domain.GetCode(err); ok {
			outcome = code.String()
		}
	}

	fetchAttempts.WithLabelValues(strategy, outcome).Inc()
	fetchDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

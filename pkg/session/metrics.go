package session

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// registry holds only session collectors so a dump is not diluted by
// process and runtime metrics.
var registry = prometheus.NewRegistry()

var (
	sessionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vyops",
		Subsystem: "session",
		Name:      "executions_total",
		Help:      "Batch executions by final result.",
	}, []string{"result"})

	rollbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vyops",
		Subsystem: "session",
		Name:      "rollbacks_total",
		Help:      "Compensating rollback sequences issued.",
	})

	sessionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vyops",
		Subsystem: "session",
		Name:      "duration_seconds",
		Help:      "Wall time of a batch execution including rollback.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)

func init() {
	registry.MustRegister(sessionsTotal, rollbacksTotal, sessionDuration)
}

// DumpMetrics writes the session metrics in Prometheus text exposition
// format. Intended as a post-run diagnostic for a short-lived process.
func DumpMetrics(w io.Writer) error {
	mfs, err := registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

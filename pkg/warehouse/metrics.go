package warehouse

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/redshift-provisioner/pkg/conditions"
)

const (
	metricNamespace       = "redshift_provisioner"
	metricStepCountKey    = "step_total"
	metricStepDurationKey = "step_duration_seconds"
	metricStepLabel       = "step"
	metricOutcomeLabel    = "outcome"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	stepCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      metricStepCountKey,
		Help:      "Total number of provisioning steps run, by outcome",
	}, []string{metricStepLabel, metricOutcomeLabel})
	stepDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricNamespace,
		Name:      metricStepDurationKey,
		Help:      "Duration of provisioning steps",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 180, 600, 1200},
	}, []string{metricStepLabel})
)

func init() {
	metrics.Registry.MustRegister(stepCount)
	metrics.Registry.MustRegister(stepDurationSeconds)
}

func observeStep(step conditions.Condition, start time.Time, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}

	stepCount.WithLabelValues(string(step), outcome).Inc()
	stepDurationSeconds.WithLabelValues(string(step)).Observe(time.Since(start).Seconds())
}

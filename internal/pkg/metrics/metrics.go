package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	onboardingTotal    *prometheus.CounterVec
	leaveDecisionTotal *prometheus.CounterVec
	txTotal            *prometheus.CounterVec
	txLatency          *prometheus.HistogramVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		onboardingTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "onboarding_total",
			Help:      "Total number of employee onboarding attempts.",
		}, []string{"result"}),
		leaveDecisionTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "leave_decision_total",
			Help:      "Total number of leave approvals and rejections.",
		}, []string{"decision", "result"}),
		txTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payroll",
			Name:      "transaction_total",
			Help:      "Total number of database transactions by outcome.",
		}, []string{"name", "result"}),
		txLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "payroll",
			Name:      "transaction_duration_seconds",
			Help:      "Latency distribution for database transactions.",
			Buckets: []float64{
				0.001, 0.002, 0.005,
				0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5, 10,
			},
		}, []string{"name", "result"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func ObserveOnboarding(err error) {
	getMetrics().onboardingTotal.WithLabelValues(result(err)).Inc()
}

// ObserveLeaveDecision records an approval or rejection; decision is
// "approve" or "reject".
func ObserveLeaveDecision(decision string, err error) {
	getMetrics().leaveDecisionTotal.WithLabelValues(decision, result(err)).Inc()
}

func ObserveTransaction(name string, err error, elapsed time.Duration) {
	m := getMetrics()
	res := result(err)
	m.txTotal.WithLabelValues(name, res).Inc()
	m.txLatency.WithLabelValues(name, res).Observe(elapsed.Seconds())
}

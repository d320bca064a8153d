package comm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/robotalks/roboclaw/pkg/roboclaw"
)

// Metrics instruments a Dispatcher. A nil *Metrics records nothing.
type Metrics struct {
	commands *prometheus.CounterVec
	replies  prometheus.Histogram
	queued   prometheus.Gauge
}

// NewMetrics creates Metrics registered with reg. Link labels commands of
// different dispatchers sharing a registry.
func NewMetrics(reg prometheus.Registerer, link string) *Metrics {
	labels := prometheus.Labels{"link": link}
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "roboclaw",
			Subsystem:   "dispatcher",
			Name:        "commands_total",
			Help:        "Resolved commands by opcode and final state.",
			ConstLabels: labels,
		}, []string{"opcode", "state"}),
		replies: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "roboclaw",
			Subsystem:   "dispatcher",
			Name:        "reply_seconds",
			Help:        "Time from the start of a write to its complete reply.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "roboclaw",
			Subsystem:   "dispatcher",
			Name:        "queued_commands",
			Help:        "Commands waiting for the link.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.commands, m.replies, m.queued)
	return m
}

func (m *Metrics) resolved(op roboclaw.Opcode, state State) {
	if m != nil {
		m.commands.WithLabelValues(op.String(), state.String()).Inc()
	}
}

func (m *Metrics) replied(start time.Time) {
	if m != nil {
		m.replies.Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) queue(delta int) {
	if m != nil {
		m.queued.Add(float64(delta))
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	// QuestionSourceFetches counts question source calls by classified outcome,
	// including "transport_error".
	QuestionSourceFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_source_fetches_total",
			Help: "Question source calls by outcome",
		},
		[]string{"outcome"},
	)

	ScoresSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scores_submitted_total",
			Help: "Score records created",
		},
	)
)

// MustRegister registers all collectors with reg.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(RequestCounter, RequestDuration, QuestionSourceFetches, ScoresSubmitted)
}

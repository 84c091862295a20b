package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and histograms for email assistant operations. Registered on the
// default registry and served on /metrics.
var (
	EmailGenerationCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "email_generation_total",
		Help: "Total number of emails generated",
	})

	EmailSendAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "email_send_attempts_total",
		Help: "Total number of email send attempts",
	}, []string{"status"})

	EmailSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "email_send_duration_seconds",
		Help: "Time taken to send emails",
	}, []string{"status"})

	ResumeMatchCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resume_match_total",
		Help: "Total number of resume matches performed",
	})
)

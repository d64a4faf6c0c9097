package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Questions handed out by the question bank, by source: static/dynamic
	QuestionsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizengine_questions_served_total",
			Help: "Total number of questions returned by the question bank",
		},
		[]string{"source"},
	)

	// Generated questions dropped by validation, by reason
	GeneratedRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizengine_generated_questions_rejected_total",
			Help: "Total number of generated questions rejected by validation",
		},
		[]string{"reason"},
	)

	GeneratorFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quizengine_generator_failures_total",
			Help: "Total number of failed question generator calls",
		},
	)

	StatsUpdateFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quizengine_stats_update_failures_total",
			Help: "Total number of question statistics updates that failed or were dropped",
		},
	)

	// Attempts started, by scope kind: lesson/unit/subject/comprehensive
	AttemptsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizengine_attempts_started_total",
			Help: "Total number of quiz attempts started",
		},
		[]string{"kind"},
	)

	// Attempts completed, by outcome: passed/failed
	AttemptsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizengine_attempts_completed_total",
			Help: "Total number of quiz attempts completed",
		},
		[]string{"outcome"},
	)

	// Time to assemble a quiz, by scope kind
	AssemblyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quizengine_quiz_assembly_duration_seconds",
			Help:    "Time spent assembling a quiz question set",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func Outcome(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

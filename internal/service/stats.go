package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tutorly/quizengine/internal/metrics"
	"github.com/tutorly/quizengine/internal/worker"
)

// statsUpdateTimeout bounds a single background stats update.
const statsUpdateTimeout = 5 * time.Second

// StatsSink receives the outcome of every scored answer to a stored
// question.
type StatsSink interface {
	Record(ctx context.Context, questionID string, isCorrect bool)
}

// Record applies the update inline. QuestionBankService is its own sink
// when no background recorder is configured.
func (qb *QuestionBankService) Record(ctx context.Context, questionID string, isCorrect bool) {
	qb.UpdateQuestionStats(ctx, questionID, isCorrect)
}

// StatsRecorder moves success-rate updates off the request path onto a
// bounded worker pool. Updates that do not fit in the queue are dropped.
type StatsRecorder struct {
	bank   *QuestionBankService
	pool   *worker.Pool[error]
	logger *slog.Logger

	drained sync.WaitGroup
}

var _ StatsSink = (*StatsRecorder)(nil)

func NewStatsRecorder(bank *QuestionBankService, workers, queue int, logger *slog.Logger) *StatsRecorder {
	r := &StatsRecorder{
		bank:   bank,
		pool:   worker.NewPool[error](workers, queue),
		logger: logger,
	}

	r.drained.Add(1)
	go r.drain()

	return r
}

// Record queues an update. The request context is not carried over:
// the update must outlive the HTTP request that produced it.
func (r *StatsRecorder) Record(_ context.Context, questionID string, isCorrect bool) {
	ok := r.pool.TrySubmit(questionID, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), statsUpdateTimeout)
		defer cancel()
		return r.bank.updateQuestionStats(ctx, questionID, isCorrect)
	})
	if !ok {
		metrics.StatsUpdateFailures.Inc()
		r.logger.Warn("stats queue full, dropping update", "question_id", questionID)
	}
}

func (r *StatsRecorder) drain() {
	defer r.drained.Done()
	for res := range r.pool.Results() {
		if res.Output != nil {
			metrics.StatsUpdateFailures.Inc()
			r.logger.Error("failed to update question stats",
				"question_id", res.JobID,
				"error", res.Output,
			)
		}
	}
}

// Close waits for queued updates to finish.
func (r *StatsRecorder) Close() {
	r.pool.Close()
	r.drained.Wait()
}

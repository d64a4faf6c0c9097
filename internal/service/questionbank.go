package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/generator"
	"github.com/tutorly/quizengine/internal/metrics"
	"github.com/tutorly/quizengine/internal/store"
)

const (
	// staticRatio is the planned share of authored questions in a request.
	staticRatio = 0.6

	// recentAnswerWindow is how many of a user's latest answers are
	// excluded when ExcludeRecent is set.
	recentAnswerWindow = 20
)

// Criteria describes a question request.
type Criteria struct {
	LessonIDs     []string
	Difficulty    question.Difficulty // "" or MIXED = any
	Types         []question.Type     // empty = any
	ExcludeRecent bool                // needs UserID
	UserID        string
	Count         int
}

// QuestionBankService blends stored questions with generated ones and
// keeps the usage statistics of stored questions up to date.
type QuestionBankService struct {
	store     store.Store
	generator generator.Generator
	logger    *slog.Logger
	now       func() time.Time
}

func NewQuestionBankService(s store.Store, g generator.Generator, logger *slog.Logger) *QuestionBankService {
	return &QuestionBankService{
		store:     s,
		generator: g,
		logger:    logger,
		now:       time.Now,
	}
}

// GetQuestions returns up to c.Count questions in random order.
//
// ceil(60%) of the count is drawn from the store first. Whatever the store
// could not supply is requested from the generator, so a thin static pool
// is fully compensated. The result may still be short when both sources
// run dry; that is not an error.
func (qb *QuestionBankService) GetQuestions(ctx context.Context, c Criteria) ([]question.Question, error) {
	if c.Count <= 0 {
		return nil, ErrInvalidCount
	}

	staticTarget := int(math.Ceil(float64(c.Count) * staticRatio))

	static, err := qb.selectStatic(ctx, c, staticTarget)
	if err != nil {
		return nil, err
	}

	var dynamic []question.Question
	if needed := c.Count - len(static); needed > 0 {
		dynamic = qb.generateDynamic(ctx, c, needed)
	}

	all := make([]question.Question, 0, len(static)+len(dynamic))
	all = append(all, static...)
	all = append(all, dynamic...)
	shuffle(all)
	if len(all) > c.Count {
		all = all[:c.Count]
	}

	staticServed := 0
	for _, q := range all {
		if !q.IsDynamic {
			staticServed++
		}
	}
	metrics.QuestionsServed.WithLabelValues("static").Add(float64(staticServed))
	metrics.QuestionsServed.WithLabelValues("dynamic").Add(float64(len(all) - staticServed))

	qb.logger.Debug("questions assembled",
		"lesson_ids", c.LessonIDs,
		"requested", c.Count,
		"static", staticServed,
		"dynamic", len(all)-staticServed,
	)

	return all, nil
}

// selectStatic picks up to target stored questions: 2×target least-used
// candidates are fetched, shuffled and cut. Every pick counts as a use.
func (qb *QuestionBankService) selectStatic(ctx context.Context, c Criteria, target int) ([]question.Question, error) {
	filter := store.QuestionFilter{
		LessonIDs:  c.LessonIDs,
		Difficulty: c.Difficulty,
		Types:      c.Types,
		Limit:      target * 2,
	}

	if c.ExcludeRecent && c.UserID != "" {
		recent, err := qb.store.RecentAnsweredQuestionIDs(ctx, c.UserID, recentAnswerWindow)
		if err != nil {
			return nil, fmt.Errorf("load recent answers: %w", err)
		}
		filter.ExcludeIDs = recent
	}

	candidates, err := qb.store.FindQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	shuffle(candidates)
	if len(candidates) > target {
		candidates = candidates[:target]
	}

	now := qb.now().UTC()
	for i := range candidates {
		q := &candidates[i]
		if err := qb.store.MarkQuestionUsed(ctx, q.ID, now); err != nil {
			qb.logger.Warn("failed to mark question used", "question_id", q.ID, "error", err)
			continue
		}
		q.TimesUsed++
		q.LastUsedAt = &now
	}

	return candidates, nil
}

// generateDynamic asks the generator for count questions about the first
// lesson. Failures are logged and yield nothing.
func (qb *QuestionBankService) generateDynamic(ctx context.Context, c Criteria, count int) []question.Question {
	if len(c.LessonIDs) == 0 {
		qb.logger.Info("skipping generation: no lesson to generate against")
		return nil
	}
	lessonID := c.LessonIDs[0]

	raws, err := qb.generator.Generate(ctx, lessonID, count, c.UserID)
	if err != nil {
		metrics.GeneratorFailures.Inc()
		qb.logger.Error("question generation failed",
			"lesson_id", lessonID,
			"count", count,
			"error", err,
		)
		return nil
	}

	accepted, rejected := generator.Accept(raws, lessonID)
	for _, reason := range rejected {
		metrics.GeneratedRejected.WithLabelValues(reason).Inc()
	}
	if len(rejected) > 0 {
		qb.logger.Info("dropped generated questions",
			"lesson_id", lessonID,
			"generated", len(raws),
			"rejected", len(rejected),
		)
	}

	return accepted
}

// UpdateQuestionStats folds one scored answer into a stored question's
// success rate. Missing questions and store failures are logged, never
// returned.
func (qb *QuestionBankService) UpdateQuestionStats(ctx context.Context, questionID string, isCorrect bool) {
	if err := qb.updateQuestionStats(ctx, questionID, isCorrect); err != nil {
		metrics.StatsUpdateFailures.Inc()
		qb.logger.Error("failed to update question stats", "question_id", questionID, "error", err)
	}
}

// updateQuestionStats is a read-modify-write with no locking; concurrent
// answers to the same question can overwrite each other.
func (qb *QuestionBankService) updateQuestionStats(ctx context.Context, questionID string, isCorrect bool) error {
	q, err := qb.store.GetQuestion(ctx, questionID)
	if errors.Is(err, store.ErrNotFound) {
		qb.logger.Warn("question not found for stats update", "question_id", questionID)
		return nil
	}
	if err != nil {
		return err
	}

	rate, ok := question.NextSuccessRate(q.SuccessRate, q.TimesUsed, isCorrect)
	if !ok {
		return nil
	}

	return qb.store.UpdateSuccessRate(ctx, questionID, rate)
}

func shuffle[T any](s []T) {
	rand.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

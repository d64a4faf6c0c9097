package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/event"
	"github.com/tutorly/quizengine/internal/id"
	"github.com/tutorly/quizengine/internal/metrics"
	"github.com/tutorly/quizengine/internal/store"
)

const (
	defaultLessonQuizCount = 5
	historyLimit           = 20
)

// lessonQuizTypes are the question types a single-lesson quiz draws from.
var lessonQuizTypes = []question.Type{
	question.TypeMCQ,
	question.TypeTrueFalse,
	question.TypeShortAnswer,
}

// Session is what a client needs to run a freshly started quiz.
type Session struct {
	AttemptID       string              `json:"attemptId"`
	Questions       []question.Question `json:"questions"`
	CurrentQuestion int                 `json:"currentQuestion"`
	StartTime       time.Time           `json:"startTime"`
	TimeLimit       int64               `json:"timeLimit"` // milliseconds, advisory
}

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation,omitempty"`
}

type QuizResult struct {
	AttemptID       string           `json:"attemptId"`
	Score           float64          `json:"score"`
	Percentage      float64          `json:"percentage"`
	Passed          bool             `json:"passed"`
	TimeSpent       int              `json:"timeSpent"`
	CorrectAnswers  int              `json:"correctAnswers"`
	TotalQuestions  int              `json:"totalQuestions"`
	QuestionResults []QuestionResult `json:"questionResults"`
}

type AttemptSummary struct {
	ID             string     `json:"id"`
	LessonID       string     `json:"lessonId"`
	Kind           string     `json:"kind"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectAnswers int        `json:"correctAnswers"`
	Score          float64    `json:"score"`
	TimeSpent      int        `json:"timeSpent"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type History struct {
	Attempts        []AttemptSummary `json:"attempts"`
	TotalAttempts   int              `json:"totalAttempts"`
	AverageScore    float64          `json:"averageScore"`
	BestScore       float64          `json:"bestScore"`
	LastAttemptDate *time.Time       `json:"lastAttemptDate"`
}

type Statistics struct {
	TotalAttempts            int            `json:"totalAttempts"`
	AverageScore             float64        `json:"averageScore"`
	PassRate                 float64        `json:"passRate"`
	AverageTimeSpent         float64        `json:"averageTimeSpent"`
	DifficultyDistribution   map[string]int `json:"difficultyDistribution"`
	QuestionTypeDistribution map[string]int `json:"questionTypeDistribution"`
}

// QuizService runs the lifecycle of a quiz attempt:
// start, answer (any number of times), complete.
type QuizService struct {
	bank   *QuestionBankService
	store  store.Store
	stats  StatsSink
	events event.Publisher
	logger *slog.Logger
	now    func() time.Time
}

func NewQuizService(
	bank *QuestionBankService,
	s store.Store,
	stats StatsSink,
	events event.Publisher,
	logger *slog.Logger,
) *QuizService {
	return &QuizService{
		bank:   bank,
		store:  s,
		stats:  stats,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// ============================================================
// Start
// ============================================================

// StartQuizAttempt assembles questions for one lesson and opens an
// attempt over them. count <= 0 means the default of 5. The attempt's
// TotalQuestions is what was actually obtained, which may be fewer.
func (s *QuizService) StartQuizAttempt(ctx context.Context, userID, lessonID string, count int) (*Session, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if count <= 0 {
		count = defaultLessonQuizCount
	}

	if _, err := s.store.GetLesson(ctx, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}

	start := s.now()
	questions, err := s.bank.GetQuestions(ctx, Criteria{
		LessonIDs:     []string{lessonID},
		Difficulty:    question.DifficultyMixed,
		Types:         lessonQuizTypes,
		ExcludeRecent: true,
		UserID:        userID,
		Count:         count,
	})
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	metrics.AssemblyDuration.WithLabelValues(string(attempt.KindLesson)).Observe(time.Since(start).Seconds())

	a, err := attempt.New(userID, attempt.LessonScope(lessonID, questions))
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAttempt(ctx, a); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	metrics.AttemptsStarted.WithLabelValues(string(attempt.KindLesson)).Inc()
	s.publishStarted(ctx, a)

	s.logger.Info("quiz attempt started",
		"attempt_id", a.ID,
		"user_id", userID,
		"lesson_id", lessonID,
		"count", len(questions),
	)

	return &Session{
		AttemptID:       a.ID,
		Questions:       questions,
		CurrentQuestion: 0,
		StartTime:       a.CreatedAt,
		TimeLimit:       attempt.TimeLimit.Milliseconds(),
	}, nil
}

// ============================================================
// Answer
// ============================================================

// SubmitAnswer scores and records one answer. The question must belong
// to the attempt's frozen set, which is what the student was shown.
// The attempt's running totals are not touched here.
func (s *QuizService) SubmitAnswer(ctx context.Context, attemptID, questionID, answer string, timeSpent int) (bool, error) {
	a, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return false, err
	}

	q, err := s.resolveQuestion(ctx, a, questionID)
	if err != nil {
		return false, err
	}

	isCorrect := attempt.CheckAnswer(q, answer)

	err = s.store.SaveAnswer(ctx, attempt.Answer{
		AttemptID:  attemptID,
		QuestionID: questionID,
		UserAnswer: answer,
		IsCorrect:  isCorrect,
		TimeSpent:  timeSpent,
		CreatedAt:  s.now().UTC(),
	})
	if errors.Is(err, store.ErrDuplicate) {
		return false, ErrAnswerAlreadySubmitted
	}
	if err != nil {
		return false, fmt.Errorf("save answer: %w", err)
	}

	if !q.IsDynamic {
		s.stats.Record(ctx, questionID, isCorrect)
	}

	s.publish(ctx, event.AnswerSubmitted, event.AnswerSubmittedPayload{
		AttemptID:  attemptID,
		QuestionID: questionID,
		IsCorrect:  isCorrect,
		TimeSpent:  timeSpent,
	})

	return isCorrect, nil
}

// ============================================================
// Complete
// ============================================================

// CompleteQuiz scores every recorded answer and stamps the attempt.
// Calling it again rescores the same answers.
func (s *QuizService) CompleteQuiz(ctx context.Context, attemptID string) (*QuizResult, error) {
	a, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	answers, err := s.store.ListAnswers(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	r := attempt.Score(answers)
	a.Complete(r, s.now())

	if err := s.store.CompleteAttempt(ctx, a); err != nil {
		return nil, fmt.Errorf("complete attempt: %w", err)
	}

	metrics.AttemptsCompleted.WithLabelValues(metrics.Outcome(r.Passed)).Inc()

	s.publish(ctx, event.AttemptCompleted, event.AttemptCompletedPayload{
		AttemptID:      a.ID,
		UserID:         a.UserID,
		LessonID:       a.LessonID,
		Score:          r.Percentage,
		Passed:         r.Passed,
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
		TimeSpent:      r.TimeSpent,
	})

	s.logger.Info("quiz completed",
		"attempt_id", a.ID,
		"user_id", a.UserID,
		"score", r.Percentage,
		"passed", r.Passed,
	)

	results := make([]QuestionResult, 0, len(answers))
	for _, ans := range answers {
		qr := QuestionResult{
			QuestionID: ans.QuestionID,
			UserAnswer: ans.UserAnswer,
			IsCorrect:  ans.IsCorrect,
		}
		if q, err := s.resolveQuestion(ctx, a, ans.QuestionID); err == nil {
			qr.Question = q.Prompt
			qr.CorrectAnswer = q.CorrectAnswer
			qr.Explanation = q.Explanation
		}
		results = append(results, qr)
	}

	return &QuizResult{
		AttemptID:       a.ID,
		Score:           r.Percentage,
		Percentage:      r.Percentage,
		Passed:          r.Passed,
		TimeSpent:       r.TimeSpent,
		CorrectAnswers:  r.CorrectAnswers,
		TotalQuestions:  r.TotalQuestions,
		QuestionResults: results,
	}, nil
}

// ============================================================
// Reporting
// ============================================================

// GetUserQuizHistory summarizes a user's latest attempts, optionally
// only those anchored on lessonID.
func (s *QuizService) GetUserQuizHistory(ctx context.Context, userID, lessonID string) (*History, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	attempts, err := s.store.ListAttempts(ctx, store.AttemptFilter{
		UserID:   userID,
		LessonID: lessonID,
		Limit:    historyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	h := &History{
		Attempts:      make([]AttemptSummary, 0, len(attempts)),
		TotalAttempts: len(attempts),
	}
	var sum float64
	for i, a := range attempts {
		h.Attempts = append(h.Attempts, summarize(a))
		sum += a.Score
		if i == 0 || a.Score > h.BestScore {
			h.BestScore = a.Score
		}
	}
	if len(attempts) > 0 {
		h.AverageScore = sum / float64(len(attempts))
		last := attempts[0].CreatedAt
		h.LastAttemptDate = &last
	}

	return h, nil
}

// GetQuizStatistics aggregates every attempt anchored on lessonID,
// including ones still in progress.
func (s *QuizService) GetQuizStatistics(ctx context.Context, lessonID string) (*Statistics, error) {
	attempts, err := s.store.ListAttempts(ctx, store.AttemptFilter{LessonID: lessonID})
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	st := &Statistics{
		TotalAttempts:            len(attempts),
		DifficultyDistribution:   map[string]int{},
		QuestionTypeDistribution: map[string]int{},
	}
	if len(attempts) == 0 {
		return st, nil
	}

	var scoreSum float64
	var timeSum, passed int
	for _, a := range attempts {
		scoreSum += a.Score
		timeSum += a.TimeSpent
		if a.Score >= attempt.PassThreshold {
			passed++
		}

		answers, err := s.store.ListAnswers(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("list answers: %w", err)
		}
		for _, ans := range answers {
			q, err := s.resolveQuestion(ctx, a, ans.QuestionID)
			if err != nil {
				continue
			}
			st.DifficultyDistribution[string(q.Difficulty)]++
			st.QuestionTypeDistribution[string(q.Type)]++
		}
	}

	n := float64(len(attempts))
	st.AverageScore = scoreSum / n
	st.PassRate = float64(passed) / n * 100
	st.AverageTimeSpent = float64(timeSum) / n

	return st, nil
}

// ============================================================
// Helpers
// ============================================================

func (s *QuizService) getAttempt(ctx context.Context, attemptID string) (*attempt.QuizAttempt, error) {
	a, err := s.store.GetAttempt(ctx, attemptID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return a, nil
}

// resolveQuestion looks questionID up in the attempt's frozen set. Only
// attempts recorded without one fall back to the stored authored questions.
func (s *QuizService) resolveQuestion(ctx context.Context, a *attempt.QuizAttempt, questionID string) (question.Question, error) {
	if q, ok := a.Question(questionID); ok {
		return q, nil
	}
	if len(a.Scope.Questions) > 0 || id.IsDynamic(questionID) {
		return question.Question{}, ErrQuestionNotFound
	}
	q, err := s.store.GetQuestion(ctx, questionID)
	if errors.Is(err, store.ErrNotFound) {
		return question.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return question.Question{}, fmt.Errorf("get question: %w", err)
	}
	return *q, nil
}

func (s *QuizService) publishStarted(ctx context.Context, a *attempt.QuizAttempt) {
	publishStarted(ctx, s.events, s.logger, a)
}

func (s *QuizService) publish(ctx context.Context, eventType string, payload any) {
	publish(ctx, s.events, s.logger, eventType, payload)
}

func publishStarted(ctx context.Context, p event.Publisher, logger *slog.Logger, a *attempt.QuizAttempt) {
	publish(ctx, p, logger, event.AttemptStarted, event.AttemptStartedPayload{
		AttemptID:      a.ID,
		UserID:         a.UserID,
		Kind:           string(a.Scope.Kind),
		LessonIDs:      a.Scope.LessonIDs,
		TotalQuestions: a.TotalQuestions,
	})
}

// publish never fails the caller; the event bus is a side channel.
func publish(ctx context.Context, p event.Publisher, logger *slog.Logger, eventType string, payload any) {
	if err := p.Publish(ctx, eventType, payload); err != nil {
		logger.Warn("failed to publish event", "event", eventType, "error", err)
	}
}

func summarize(a *attempt.QuizAttempt) AttemptSummary {
	return AttemptSummary{
		ID:             a.ID,
		LessonID:       a.LessonID,
		Kind:           string(a.Scope.Kind),
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Score:          a.Score,
		TimeSpent:      a.TimeSpent,
		CreatedAt:      a.CreatedAt,
		CompletedAt:    a.CompletedAt,
	}
}

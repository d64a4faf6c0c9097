package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/event"
	"github.com/tutorly/quizengine/internal/metrics"
	"github.com/tutorly/quizengine/internal/store"
)

const (
	defaultComprehensiveCount = 30
	defaultUnitCount          = 15
	defaultSubjectCount       = 50

	// completedLessonWindow caps how many recently completed lessons a
	// comprehensive quiz spans.
	completedLessonWindow = 20
)

type ComprehensiveOptions struct {
	MaxQuestions int                 // <= 0 = 30
	Difficulty   question.Difficulty // "" or MIXED = any
	SubjectID    string              // optional
}

// ComposedQuiz is the result of starting a multi-lesson quiz.
type ComposedQuiz struct {
	AttemptID       string              `json:"attemptId"`
	Type            attempt.Kind        `json:"type"`
	Questions       []question.Question `json:"questions"`
	LessonsIncluded int                 `json:"lessonsIncluded"`
	TotalQuestions  int                 `json:"totalQuestions"`
	TimeLimit       int64               `json:"timeLimit"` // milliseconds, advisory
}

// QuizDetails is an attempt rehydrated from its frozen scope.
type QuizDetails struct {
	AttemptID       string              `json:"attemptId"`
	Type            attempt.Kind        `json:"type"`
	Lesson          *curriculum.Lesson  `json:"lesson,omitempty"`
	UnitID          string              `json:"unitId,omitempty"`
	SubjectID       string              `json:"subjectId,omitempty"`
	LessonIDs       []string            `json:"lessonIds"`
	LessonsIncluded int                 `json:"lessonsIncluded"`
	TotalQuestions  int                 `json:"totalQuestions"`
	CorrectAnswers  int                 `json:"correctAnswers"`
	Score           float64             `json:"score"`
	CompletedAt     *time.Time          `json:"completedAt,omitempty"`
	Questions       []question.Question `json:"questions"`
}

// Composer builds quizzes spanning several lessons: a user's recent
// lessons, a whole unit or a whole subject. The composed question set is
// frozen into the attempt and only ever read back from there.
type Composer struct {
	bank   *QuestionBankService
	store  store.Store
	events event.Publisher
	logger *slog.Logger
	now    func() time.Time
}

func NewComposer(bank *QuestionBankService, s store.Store, events event.Publisher, logger *slog.Logger) *Composer {
	return &Composer{
		bank:   bank,
		store:  s,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// CreateComprehensiveQuiz quizzes a user on their most recently completed
// lessons. The budget is split max(1, budget/lessons) per lesson and the
// concatenation is cut to the budget, so with more lessons than questions
// the trailing lessons get nothing.
func (c *Composer) CreateComprehensiveQuiz(ctx context.Context, userID string, opts ComprehensiveOptions) (*ComposedQuiz, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	budget := opts.MaxQuestions
	if budget <= 0 {
		budget = defaultComprehensiveCount
	}

	lessons, err := c.store.RecentCompletedLessons(ctx, userID, opts.SubjectID, completedLessonWindow)
	if err != nil {
		return nil, fmt.Errorf("recent completed lessons: %w", err)
	}
	if len(lessons) == 0 {
		return nil, ErrNoCompletedLessons
	}

	perLesson := max(1, budget/len(lessons))

	start := c.now()
	var all []question.Question
	for _, l := range lessons {
		qs, err := c.bank.GetQuestions(ctx, Criteria{
			LessonIDs:     []string{l.ID},
			Difficulty:    opts.Difficulty,
			ExcludeRecent: true,
			UserID:        userID,
			Count:         perLesson,
		})
		if err != nil {
			return nil, fmt.Errorf("get questions for lesson %s: %w", l.ID, err)
		}
		all = append(all, qs...)
	}
	if len(all) > budget {
		all = all[:budget]
	}
	metrics.AssemblyDuration.WithLabelValues(string(attempt.KindComprehensive)).Observe(time.Since(start).Seconds())

	scope := attempt.ComprehensiveScope(opts.SubjectID, lessonIDs(lessons), all)
	return c.persist(ctx, userID, scope)
}

// CreateUnitQuiz quizzes every lesson of a unit, completed or not, with a
// single mixed-difficulty pull. maxQuestions <= 0 means 15.
func (c *Composer) CreateUnitQuiz(ctx context.Context, userID, unitID string, maxQuestions int) (*ComposedQuiz, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if maxQuestions <= 0 {
		maxQuestions = defaultUnitCount
	}

	lessons, err := c.store.ListLessonsByUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("list unit lessons: %w", err)
	}
	if len(lessons) == 0 {
		return nil, ErrUnitHasNoLessons
	}

	ids := lessonIDs(lessons)
	qs, err := c.pull(ctx, attempt.KindUnit, userID, ids, maxQuestions)
	if err != nil {
		return nil, err
	}

	return c.persist(ctx, userID, attempt.UnitScope(unitID, ids, qs))
}

// CreateSubjectQuiz quizzes every lesson under every unit of a subject.
// maxQuestions <= 0 means 50.
func (c *Composer) CreateSubjectQuiz(ctx context.Context, userID, subjectID string, maxQuestions int) (*ComposedQuiz, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if maxQuestions <= 0 {
		maxQuestions = defaultSubjectCount
	}

	lessons, err := c.store.ListLessonsBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list subject lessons: %w", err)
	}
	if len(lessons) == 0 {
		return nil, ErrSubjectHasNoLessons
	}

	ids := lessonIDs(lessons)
	qs, err := c.pull(ctx, attempt.KindSubject, userID, ids, maxQuestions)
	if err != nil {
		return nil, err
	}

	return c.persist(ctx, userID, attempt.SubjectScope(subjectID, ids, qs))
}

// GetQuizDetails returns an attempt's frozen question list and scope.
// It never consults the question bank.
func (c *Composer) GetQuizDetails(ctx context.Context, attemptID string) (*QuizDetails, error) {
	a, err := c.store.GetAttempt(ctx, attemptID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}

	d := &QuizDetails{
		AttemptID:       a.ID,
		Type:            a.Scope.Kind,
		UnitID:          a.Scope.UnitID,
		SubjectID:       a.Scope.SubjectID,
		LessonIDs:       a.Scope.LessonIDs,
		LessonsIncluded: max(1, len(a.Scope.LessonIDs)),
		TotalQuestions:  a.TotalQuestions,
		CorrectAnswers:  a.CorrectAnswers,
		Score:           a.Score,
		CompletedAt:     a.CompletedAt,
		Questions:       a.Scope.Questions,
	}
	if d.Questions == nil {
		d.Questions = []question.Question{}
	}

	// The anchor lesson is informational; a deleted lesson is not an error.
	if l, err := c.store.GetLesson(ctx, a.LessonID); err == nil {
		d.Lesson = l
	} else if !errors.Is(err, store.ErrNotFound) {
		c.logger.Warn("failed to load anchor lesson", "attempt_id", a.ID, "lesson_id", a.LessonID, "error", err)
	}

	return d, nil
}

// MarkLessonCompleted records that userID finished lessonID, making it
// eligible for comprehensive quizzes.
func (c *Composer) MarkLessonCompleted(ctx context.Context, userID, lessonID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	if _, err := c.store.GetLesson(ctx, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLessonNotFound
		}
		return fmt.Errorf("get lesson: %w", err)
	}

	return c.store.MarkLessonCompleted(ctx, curriculum.Progress{
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: c.now().UTC(),
	})
}

// pull draws count mixed-difficulty questions across all lessonIDs at once.
func (c *Composer) pull(ctx context.Context, kind attempt.Kind, userID string, lessonIDs []string, count int) ([]question.Question, error) {
	start := c.now()
	qs, err := c.bank.GetQuestions(ctx, Criteria{
		LessonIDs:     lessonIDs,
		Difficulty:    question.DifficultyMixed,
		ExcludeRecent: true,
		UserID:        userID,
		Count:         count,
	})
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	metrics.AssemblyDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	return qs, nil
}

func (c *Composer) persist(ctx context.Context, userID string, scope attempt.Scope) (*ComposedQuiz, error) {
	a, err := attempt.New(userID, scope)
	if err != nil {
		return nil, err
	}
	if err := c.store.SaveAttempt(ctx, a); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	metrics.AttemptsStarted.WithLabelValues(string(scope.Kind)).Inc()
	publishStarted(ctx, c.events, c.logger, a)

	c.logger.Info("composed quiz started",
		"attempt_id", a.ID,
		"user_id", userID,
		"kind", scope.Kind,
		"lessons", len(scope.LessonIDs),
		"count", len(scope.Questions),
	)

	qs := scope.Questions
	if qs == nil {
		qs = []question.Question{}
	}
	return &ComposedQuiz{
		AttemptID:       a.ID,
		Type:            scope.Kind,
		Questions:       qs,
		LessonsIncluded: len(scope.LessonIDs),
		TotalQuestions:  a.TotalQuestions,
		TimeLimit:       attempt.TimeLimit.Milliseconds(),
	}, nil
}

func lessonIDs(lessons []*curriculum.Lesson) []string {
	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return ids
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// QuestionFilter narrows a static question lookup. Only active, authored
// questions are ever returned; results come least-used first.
type QuestionFilter struct {
	LessonIDs  []string            // empty = any lesson
	Difficulty question.Difficulty // "" or MIXED = any
	Types      []question.Type     // empty = any
	ExcludeIDs []string
	Limit      int // <= 0 = no limit
}

// AttemptFilter selects attempts newest first.
type AttemptFilter struct {
	UserID   string
	LessonID string // anchor lesson
	Limit    int    // <= 0 = no limit
}

// Store is the persistence contract the services depend on.
// Every mutation is a single statement; there is no cross-call isolation.
type Store interface {
	// Curriculum
	SaveSubject(ctx context.Context, s *curriculum.Subject) error
	GetSubject(ctx context.Context, id string) (*curriculum.Subject, error)
	ListSubjects(ctx context.Context) ([]*curriculum.Subject, error)
	SaveUnit(ctx context.Context, u *curriculum.Unit) error
	GetUnit(ctx context.Context, id string) (*curriculum.Unit, error)
	ListUnits(ctx context.Context, subjectID string) ([]*curriculum.Unit, error)
	SaveLesson(ctx context.Context, l *curriculum.Lesson) error
	GetLesson(ctx context.Context, id string) (*curriculum.Lesson, error)
	ListLessonsByUnit(ctx context.Context, unitID string) ([]*curriculum.Lesson, error)
	ListLessonsBySubject(ctx context.Context, subjectID string) ([]*curriculum.Lesson, error)

	// Progress
	MarkLessonCompleted(ctx context.Context, p curriculum.Progress) error
	RecentCompletedLessons(ctx context.Context, userID, subjectID string, limit int) ([]*curriculum.Lesson, error)

	// Questions
	SaveQuestion(ctx context.Context, q *question.Question) error
	GetQuestion(ctx context.Context, id string) (*question.Question, error)
	ListQuestionsByLesson(ctx context.Context, lessonID string) ([]question.Question, error)
	FindQuestions(ctx context.Context, f QuestionFilter) ([]question.Question, error)
	MarkQuestionUsed(ctx context.Context, id string, at time.Time) error
	UpdateSuccessRate(ctx context.Context, id string, rate float64) error

	// Attempts
	SaveAttempt(ctx context.Context, a *attempt.QuizAttempt) error
	GetAttempt(ctx context.Context, id string) (*attempt.QuizAttempt, error)
	CompleteAttempt(ctx context.Context, a *attempt.QuizAttempt) error
	ListAttempts(ctx context.Context, f AttemptFilter) ([]*attempt.QuizAttempt, error)
	SaveAnswer(ctx context.Context, a attempt.Answer) error
	ListAnswers(ctx context.Context, attemptID string) ([]attempt.Answer, error)
	RecentAnsweredQuestionIDs(ctx context.Context, userID string, limit int) ([]string, error)

	Close() error
}

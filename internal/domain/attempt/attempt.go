package attempt

import (
	"errors"
	"time"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/id"
)

// TimeLimit is the client-side budget handed out with every attempt.
// The server never enforces it.
const TimeLimit = 30 * time.Minute

// QuizAttempt is one student taking one quiz. Its question set is frozen
// in Scope at creation and every later scoring step replays against it.
type QuizAttempt struct {
	ID     string
	UserID string

	// LessonID is the anchor lesson: the first lesson of the scope.
	// Scope.LessonIDs is the authoritative lesson list.
	LessonID string

	TotalQuestions int
	CorrectAnswers int
	Score          float64
	TimeSpent      int // seconds, summed over answers at completion
	CreatedAt      time.Time
	CompletedAt    *time.Time
	Scope          Scope
}

// Answer is a single write-once submission against an attempt.
type Answer struct {
	AttemptID  string
	QuestionID string
	UserAnswer string
	IsCorrect  bool
	TimeSpent  int // seconds
	CreatedAt  time.Time
}

// New freezes the given scope into a fresh attempt for userID.
func New(userID string, scope Scope) (*QuizAttempt, error) {
	if userID == "" {
		return nil, errors.New("attempt user id cannot be empty")
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	return &QuizAttempt{
		ID:             id.GenerateID(),
		UserID:         userID,
		LessonID:       scope.LessonIDs[0],
		TotalQuestions: len(scope.Questions),
		CreatedAt:      time.Now().UTC(),
		Scope:          scope,
	}, nil
}

// Question looks up a question in the frozen set.
func (a *QuizAttempt) Question(questionID string) (question.Question, bool) {
	for _, q := range a.Scope.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}

func (a *QuizAttempt) IsCompleted() bool {
	return a.CompletedAt != nil
}

// Complete records a scoring result on the attempt. Calling it again with
// the same answers yields the same values and a fresh timestamp.
func (a *QuizAttempt) Complete(r Result, at time.Time) {
	a.CorrectAnswers = r.CorrectAnswers
	a.Score = r.Percentage
	a.TimeSpent = r.TimeSpent
	completed := at.UTC()
	a.CompletedAt = &completed
}

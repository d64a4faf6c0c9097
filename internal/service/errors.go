package service

import "errors"

// User-facing domain errors. Handlers map these to 4xx responses.
var (
	ErrNoCompletedLessons     = errors.New("no completed lessons to quiz on")
	ErrUnitHasNoLessons       = errors.New("unit has no lessons")
	ErrSubjectHasNoLessons    = errors.New("subject has no lessons")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrAttemptNotFound        = errors.New("quiz attempt not found")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrAnswerAlreadySubmitted = errors.New("answer already submitted for this question")
	ErrInvalidCount           = errors.New("question count must be positive")
	ErrUserRequired           = errors.New("user id is required")
)

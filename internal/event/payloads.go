package event

// AttemptStartedPayload accompanies AttemptStarted.
type AttemptStartedPayload struct {
	AttemptID      string   `json:"attemptId"`
	UserID         string   `json:"userId"`
	Kind           string   `json:"kind"`
	LessonIDs      []string `json:"lessonIds"`
	TotalQuestions int      `json:"totalQuestions"`
}

// AnswerSubmittedPayload accompanies AnswerSubmitted.
type AnswerSubmittedPayload struct {
	AttemptID  string `json:"attemptId"`
	QuestionID string `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
	TimeSpent  int    `json:"timeSpent"`
}

// AttemptCompletedPayload accompanies AttemptCompleted. The achievement
// engine awards points from these figures.
type AttemptCompletedPayload struct {
	AttemptID      string  `json:"attemptId"`
	UserID         string  `json:"userId"`
	LessonID       string  `json:"lessonId"`
	Score          float64 `json:"score"`
	Passed         bool    `json:"passed"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
	TimeSpent      int     `json:"timeSpent"`
}

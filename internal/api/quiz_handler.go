package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type StartQuizRequest struct {
	LessonID      string `json:"lessonId" validate:"required" example:"b3f1c2d4-lesson"`
	QuestionCount int    `json:"questionCount,omitempty" validate:"omitempty,min=1,max=20" example:"5"`
}

type SubmitAnswerRequest struct {
	AttemptID  string `json:"attemptId" validate:"required"`
	QuestionID string `json:"questionId" validate:"required"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"timeSpent" validate:"min=0" example:"12"`
}

type SubmitAnswerResponse struct {
	IsCorrect bool `json:"isCorrect"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startQuiz starts a single-lesson quiz.
// @Summary      Start a lesson quiz
// @Description  Assembles questions for one lesson from stored and generated questions and opens an attempt.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string            true  "Caller"
// @Param        body       body      StartQuizRequest  true  "Lesson and question count"
// @Success      201        {object}  service.Session
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse  "lesson not found"
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/start [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.quiz.StartQuizAttempt(r.Context(), userID, req.LessonID, req.QuestionCount)
	if h.handleServiceError(w, err, "start quiz") {
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// submitAnswer scores one answer.
// @Summary      Submit an answer
// @Description  Scores an answer against the attempt's question and records it. Each question accepts one answer per attempt.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Answer"
// @Success      200   {object}  SubmitAnswerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse  "attempt or question not found"
// @Failure      409   {object}  ErrorResponse  "already answered"
// @Failure      500   {object}  ErrorResponse
// @Router       /quiz/answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	isCorrect, err := h.quiz.SubmitAnswer(r.Context(), req.AttemptID, req.QuestionID, req.Answer, req.TimeSpent)
	if h.handleServiceError(w, err, "submit answer") {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{IsCorrect: isCorrect})
}

// completeQuiz scores a finished attempt.
// @Summary      Complete a quiz
// @Description  Scores every submitted answer, stamps the attempt and returns per-question results.
// @Tags         Quiz
// @Produce      json
// @Param        attemptID  path      string  true  "Attempt ID"
// @Success      200        {object}  service.QuizResult
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/complete/{attemptID} [post]
func (h *Handler) completeQuiz(w http.ResponseWriter, r *http.Request) {
	result, err := h.quiz.CompleteQuiz(r.Context(), r.PathValue("attemptID"))
	if h.handleServiceError(w, err, "complete quiz") {
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// quizHistory lists the caller's recent attempts.
// @Summary      Quiz history
// @Description  The caller's 20 most recent attempts with summary figures.
// @Tags         Quiz
// @Produce      json
// @Param        X-User-ID  header    string  true   "Caller"
// @Param        lessonId   query     string  false  "Only attempts anchored on this lesson"
// @Success      200        {object}  service.History
// @Failure      401        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/history [get]
func (h *Handler) quizHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	history, err := h.quiz.GetUserQuizHistory(r.Context(), userID, r.URL.Query().Get("lessonId"))
	if h.handleServiceError(w, err, "quiz history") {
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// quizStatistics aggregates attempts on a lesson.
// @Summary      Lesson quiz statistics
// @Tags         Quiz
// @Produce      json
// @Param        lessonID  path      string  true  "Lesson ID"
// @Success      200       {object}  service.Statistics
// @Failure      500       {object}  ErrorResponse
// @Router       /quiz/statistics/{lessonID} [get]
func (h *Handler) quizStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.quiz.GetQuizStatistics(r.Context(), r.PathValue("lessonID"))
	if h.handleServiceError(w, err, "quiz statistics") {
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

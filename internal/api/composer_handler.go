package api

import (
	"net/http"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type ComprehensiveQuizRequest struct {
	MaxQuestions int    `json:"maxQuestions,omitempty" validate:"omitempty,min=5,max=100" example:"30"`
	Difficulty   string `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD MIXED" example:"MIXED"`
	SubjectID    string `json:"subjectId,omitempty"`
}

type UnitQuizRequest struct {
	MaxQuestions int `json:"maxQuestions,omitempty" validate:"omitempty,min=5,max=50" example:"15"`
}

type SubjectQuizRequest struct {
	MaxQuestions int `json:"maxQuestions,omitempty" validate:"omitempty,min=10,max=100" example:"50"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startComprehensiveQuiz quizzes the caller on recently completed lessons.
// @Summary      Start a comprehensive quiz
// @Description  Spans up to 20 of the caller's most recently completed lessons, optionally within one subject.
// @Tags         Composed quizzes
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                    true  "Caller"
// @Param        body       body      ComprehensiveQuizRequest  true  "Options"
// @Success      201        {object}  service.ComposedQuiz
// @Failure      400        {object}  ErrorResponse  "no completed lessons"
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/comprehensive/start [post]
func (h *Handler) startComprehensiveQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ComprehensiveQuizRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	quiz, err := h.composer.CreateComprehensiveQuiz(r.Context(), userID, service.ComprehensiveOptions{
		MaxQuestions: req.MaxQuestions,
		Difficulty:   question.Difficulty(req.Difficulty),
		SubjectID:    req.SubjectID,
	})
	if h.handleServiceError(w, err, "comprehensive quiz") {
		return
	}

	respondJSON(w, http.StatusCreated, quiz)
}

// startUnitQuiz quizzes every lesson of a unit.
// @Summary      Start a unit quiz
// @Tags         Composed quizzes
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string           true   "Caller"
// @Param        unitID     path      string           true   "Unit ID"
// @Param        body       body      UnitQuizRequest  false  "Options"
// @Success      201        {object}  service.ComposedQuiz
// @Failure      400        {object}  ErrorResponse  "unit has no lessons"
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/unit/{unitID}/start [post]
func (h *Handler) startUnitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req UnitQuizRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	quiz, err := h.composer.CreateUnitQuiz(r.Context(), userID, r.PathValue("unitID"), req.MaxQuestions)
	if h.handleServiceError(w, err, "unit quiz") {
		return
	}

	respondJSON(w, http.StatusCreated, quiz)
}

// startSubjectQuiz quizzes every lesson of a subject.
// @Summary      Start a subject quiz
// @Tags         Composed quizzes
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true   "Caller"
// @Param        subjectID  path      string              true   "Subject ID"
// @Param        body       body      SubjectQuizRequest  false  "Options"
// @Success      201        {object}  service.ComposedQuiz
// @Failure      400        {object}  ErrorResponse  "subject has no lessons"
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/subject/{subjectID}/start [post]
func (h *Handler) startSubjectQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SubjectQuizRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	quiz, err := h.composer.CreateSubjectQuiz(r.Context(), userID, r.PathValue("subjectID"), req.MaxQuestions)
	if h.handleServiceError(w, err, "subject quiz") {
		return
	}

	respondJSON(w, http.StatusCreated, quiz)
}

// quizDetails returns an attempt's frozen question set.
// @Summary      Get quiz details
// @Description  Returns the exact question list and scope recorded when the attempt was created.
// @Tags         Composed quizzes
// @Produce      json
// @Param        attemptID  path      string  true  "Attempt ID"
// @Success      200        {object}  service.QuizDetails
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /quiz/attempts/{attemptID}/details [get]
func (h *Handler) quizDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.composer.GetQuizDetails(r.Context(), r.PathValue("attemptID"))
	if h.handleServiceError(w, err, "quiz details") {
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// decodeOptional is decodeAndValidate for endpoints whose body may be
// omitted entirely.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return validateStruct(w, v)
	}
	return decodeAndValidate(w, r, v)
}

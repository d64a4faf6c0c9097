package api

import (
	"net/http"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/service"
)

type QueryQuestionsRequest struct {
	LessonIDs     []string `json:"lessonIds" validate:"required,min=1,dive,required"`
	Difficulty    string   `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD MIXED"`
	Types         []string `json:"types,omitempty" validate:"omitempty,dive,oneof=MCQ TRUE_FALSE SHORT_ANSWER FILL_BLANK"`
	ExcludeRecent bool     `json:"excludeRecent"`
	Count         int      `json:"count" validate:"required,min=1,max=100" example:"5"`
}

type QueryQuestionsResponse struct {
	Questions []question.Question `json:"questions"`
	Count     int                 `json:"count"`
}

// queryQuestions runs the question bank directly, without opening an
// attempt. Stored questions it returns still count as used.
// @Summary      Query the question bank
// @Description  Blends stored and generated questions for the given lessons. Mainly for diagnostics and authoring tools.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                 false  "Caller, required for excludeRecent"
// @Param        body       body      QueryQuestionsRequest  true   "Criteria"
// @Success      200        {object}  QueryQuestionsResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /questions/query [post]
func (h *Handler) queryQuestions(w http.ResponseWriter, r *http.Request) {
	var req QueryQuestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	types := make([]question.Type, len(req.Types))
	for i, t := range req.Types {
		types[i] = question.Type(t)
	}

	qs, err := h.bank.GetQuestions(r.Context(), service.Criteria{
		LessonIDs:     req.LessonIDs,
		Difficulty:    question.Difficulty(req.Difficulty),
		Types:         types,
		ExcludeRecent: req.ExcludeRecent,
		UserID:        r.Header.Get(userHeader),
		Count:         req.Count,
	})
	if h.handleServiceError(w, err, "query questions") {
		return
	}
	if qs == nil {
		qs = []question.Question{}
	}

	respondJSON(w, http.StatusOK, QueryQuestionsResponse{Questions: qs, Count: len(qs)})
}

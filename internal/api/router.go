// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Lesson quizzes
	mux.HandleFunc("POST /quiz/start", h.startQuiz)
	mux.HandleFunc("POST /quiz/answer", h.submitAnswer)
	mux.HandleFunc("POST /quiz/complete/{attemptID}", h.completeQuiz)
	mux.HandleFunc("GET /quiz/history", h.quizHistory)
	mux.HandleFunc("GET /quiz/statistics/{lessonID}", h.quizStatistics)

	// Composed quizzes
	mux.HandleFunc("POST /quiz/comprehensive/start", h.startComprehensiveQuiz)
	mux.HandleFunc("POST /quiz/unit/{unitID}/start", h.startUnitQuiz)
	mux.HandleFunc("POST /quiz/subject/{subjectID}/start", h.startSubjectQuiz)
	mux.HandleFunc("GET /quiz/attempts/{attemptID}/details", h.quizDetails)

	// Questions
	mux.HandleFunc("POST /questions/query", h.queryQuestions)

	// Progress
	mux.HandleFunc("POST /progress/lessons/{lessonID}/complete", h.completeLesson)

	// Catalogue
	mux.HandleFunc("GET /catalogue/export", h.exportCatalogue)
	mux.HandleFunc("POST /catalogue/import", h.importCatalogue)
}

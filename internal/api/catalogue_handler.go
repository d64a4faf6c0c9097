package api

import (
	"net/http"

	"github.com/tutorly/quizengine/internal/seed"
)

type CompleteLessonResponse struct {
	LessonID string `json:"lessonId"`
	Status   string `json:"status"`
}

// exportCatalogue downloads the authored catalogue.
// @Summary      Export the catalogue
// @Description  Every subject, unit, lesson and stored question as JSON. Usage statistics are not included.
// @Tags         Catalogue
// @Produce      json
// @Success      200  {object}  seed.Catalogue
// @Failure      500  {object}  ErrorResponse
// @Router       /catalogue/export [get]
func (h *Handler) exportCatalogue(w http.ResponseWriter, r *http.Request) {
	c, err := seed.Export(r.Context(), h.store)
	if err != nil {
		h.logger.Error("export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export catalogue")
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=quizengine-catalogue.json")
	respondJSON(w, http.StatusOK, c)
}

// importCatalogue creates everything in the posted catalogue.
// @Summary      Import a catalogue
// @Description  Best effort: invalid entries are skipped and counted.
// @Tags         Catalogue
// @Accept       json
// @Produce      json
// @Param        body  body      seed.Catalogue  true  "Catalogue"
// @Success      201   {object}  seed.Result
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /catalogue/import [post]
func (h *Handler) importCatalogue(w http.ResponseWriter, r *http.Request) {
	var c seed.Catalogue
	if !decodeJSON(w, r, &c) {
		return
	}

	res, err := seed.Import(r.Context(), h.store, &c, h.logger)
	if err != nil {
		h.logger.Error("import failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to import catalogue")
		return
	}

	respondJSON(w, http.StatusCreated, res)
}

// completeLesson records that the caller finished a lesson.
// @Summary      Mark a lesson completed
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller"
// @Param        lessonID   path      string  true  "Lesson ID"
// @Success      200        {object}  CompleteLessonResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /progress/lessons/{lessonID}/complete [post]
func (h *Handler) completeLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	lessonID := r.PathValue("lessonID")

	err := h.composer.MarkLessonCompleted(r.Context(), userID, lessonID)
	if h.handleServiceError(w, err, "complete lesson") {
		return
	}

	respondJSON(w, http.StatusOK, CompleteLessonResponse{LessonID: lessonID, Status: "completed"})
}

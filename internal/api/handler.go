// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tutorly/quizengine/internal/service"
	"github.com/tutorly/quizengine/internal/store"
)

// userHeader carries the authenticated caller. Authentication itself
// happens upstream.
const userHeader = "X-User-ID"

// maxBodyBytes bounds request bodies; catalogue imports are the largest.
const maxBodyBytes = 8 << 20

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	quiz     *service.QuizService
	composer *service.Composer
	bank     *service.QuestionBankService
	store    store.Store
	logger   *slog.Logger
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	quiz *service.QuizService,
	composer *service.Composer,
	bank *service.QuestionBankService,
	s store.Store,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		quiz:     quiz,
		composer: composer,
		bank:     bank,
		store:    s,
		logger:   logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads the request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs struct validation on it.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	return validateStruct(w, v)
}

func validateStruct(w http.ResponseWriter, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	respondError(w, http.StatusBadRequest, strings.Join(msgs, "; "))
	return false
}

// requireUser returns the caller id, writing a 401 when it is missing.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get(userHeader))
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "missing "+userHeader+" header")
		return "", false
	}
	return userID, true
}

// handleServiceError maps domain and store errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, op string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoCompletedLessons),
		errors.Is(err, service.ErrUnitHasNoLessons),
		errors.Is(err, service.ErrSubjectHasNoLessons),
		errors.Is(err, service.ErrInvalidCount),
		errors.Is(err, service.ErrUserRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAnswerAlreadySubmitted),
		errors.Is(err, store.ErrDuplicate):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed", "op", op, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

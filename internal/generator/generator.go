package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/id"
)

// Generator produces fresh questions for a lesson.
// Implementations may call an LLM or return canned results (for tests).
// Output is untrusted and goes through Accept before use.
type Generator interface {
	Generate(ctx context.Context, lessonID string, count int, userID string) ([]RawQuestion, error)
}

// LessonSource resolves the lesson a generator writes questions about.
type LessonSource interface {
	GetLesson(ctx context.Context, id string) (*curriculum.Lesson, error)
}

// RawQuestion is a generated question as the model returned it.
type RawQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer Answer   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Points        int      `json:"points,omitempty"`
}

// Answer accepts a JSON string, number or boolean. Models are not
// consistent about quoting "true" or "2".
type Answer string

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*a = ""
	case bool:
		*a = Answer(strconv.FormatBool(x))
	case float64:
		*a = Answer(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("unsupported correct answer %s", string(data))
	}
	return nil
}

// GenerateError is returned when generation fails so the caller can
// distinguish "model returned junk" from "model was unreachable."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

// Nop never generates anything. Used when no provider is configured.
type Nop struct{}

var _ Generator = Nop{}

func (Nop) Generate(context.Context, string, int, string) ([]RawQuestion, error) {
	return nil, nil
}

// ============================================================================
// Validation
// ============================================================================

const minPromptLength = 10

// Reject reasons reported by Check.
const (
	RejectShortPrompt  = "prompt too short"
	RejectPlaceholder  = "prompt contains placeholder brackets"
	RejectMissingType  = "missing type"
	RejectMissingKey   = "missing correct answer"
	RejectUnknownType  = "unknown type"
	RejectFewMCQOption = "multiple choice needs two options"
)

// Check returns the reason raw must be dropped, or "" when it is usable.
func Check(raw RawQuestion) string {
	prompt := strings.TrimSpace(raw.Question)
	if utf8.RuneCountInString(prompt) < minPromptLength {
		return RejectShortPrompt
	}
	if strings.ContainsAny(prompt, "[]") {
		return RejectPlaceholder
	}
	if strings.TrimSpace(raw.Type) == "" {
		return RejectMissingType
	}
	if strings.TrimSpace(string(raw.CorrectAnswer)) == "" {
		return RejectMissingKey
	}

	t, ok := question.NormalizeType(raw.Type)
	if !ok {
		return RejectUnknownType
	}
	if t == question.TypeMCQ && len(raw.Options) < 2 {
		return RejectFewMCQOption
	}
	return ""
}

// Accept validates and normalizes generated questions for lessonID.
// Each accepted question gets a synthetic id and zero usage. rejected
// holds one reason per dropped question.
func Accept(raws []RawQuestion, lessonID string) (accepted []question.Question, rejected []string) {
	accepted = make([]question.Question, 0, len(raws))

	for _, raw := range raws {
		if reason := Check(raw); reason != "" {
			rejected = append(rejected, reason)
			continue
		}

		t, _ := question.NormalizeType(raw.Type)
		options := raw.Options
		if t == question.TypeTrueFalse {
			options = nil
		}

		difficulty := question.Difficulty(strings.ToUpper(strings.TrimSpace(raw.Difficulty)))
		if !difficulty.Valid() {
			difficulty = question.DifficultyMedium
		}

		points := raw.Points
		if points <= 0 {
			points = 1
		}

		accepted = append(accepted, question.Question{
			ID:            id.GenerateDynamicID(),
			LessonID:      lessonID,
			Type:          t,
			Prompt:        strings.TrimSpace(raw.Question),
			Options:       options,
			CorrectAnswer: strings.TrimSpace(string(raw.CorrectAnswer)),
			Explanation:   raw.Explanation,
			Difficulty:    difficulty,
			Points:        points,
			IsDynamic:     true,
			IsActive:      true,
			TimesUsed:     0,
		})
	}

	return accepted, rejected
}

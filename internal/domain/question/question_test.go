package question_test

import (
	"testing"

	"github.com/tutorly/quizengine/internal/domain/question"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		raw  string
		want question.Type
		ok   bool
	}{
		{"MCQ", question.TypeMCQ, true},
		{"multipleChoice", question.TypeMCQ, true},
		{"TrueFalse", question.TypeTrueFalse, true},
		{" true_false ", question.TypeTrueFalse, true},
		{"fillblank", question.TypeFillBlank, true},
		{"ShortAnswer", question.TypeShortAnswer, true},
		{"essay", question.Type("ESSAY"), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := question.NormalizeType(tt.raw)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NormalizeType(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDifficultyIsFilter(t *testing.T) {
	if question.DifficultyMixed.IsFilter() {
		t.Error("MIXED should not filter")
	}
	if question.Difficulty("").IsFilter() {
		t.Error("empty difficulty should not filter")
	}
	if !question.DifficultyHard.IsFilter() {
		t.Error("HARD should filter")
	}
}

func validQuestion() question.Question {
	return question.Question{
		ID:            "q1",
		LessonID:      "l1",
		Type:          question.TypeMCQ,
		Prompt:        "What is 2 + 2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
		Difficulty:    question.DifficultyEasy,
		Points:        1,
		IsActive:      true,
	}
}

func TestValidate(t *testing.T) {
	q := validQuestion()
	if err := q.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(q *question.Question)
	}{
		{"mcq with one option", func(q *question.Question) { q.Options = []string{"4"} }},
		{"true false with options", func(q *question.Question) {
			q.Type = question.TypeTrueFalse
			q.Options = []string{"true", "false"}
		}},
		{"empty prompt", func(q *question.Question) { q.Prompt = "  " }},
		{"unknown type", func(q *question.Question) { q.Type = "ESSAY" }},
		{"mixed difficulty", func(q *question.Question) { q.Difficulty = question.DifficultyMixed }},
		{"rate above 100", func(q *question.Question) { q.SuccessRate = 101 }},
		{"negative usage", func(q *question.Question) { q.TimesUsed = -1 }},
		{"missing answer", func(q *question.Question) { q.CorrectAnswer = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			if err := q.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNextSuccessRate(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		timesUsed int
		correct   bool
		want      float64
		ok        bool
	}{
		{"zero trials is a no-op", 40, 0, true, 40, false},
		{"first correct answer", 0, 1, true, 100, true},
		{"first wrong answer", 0, 1, false, 0, true},
		{"half to two thirds", 50, 3, true, 83.33, true},
		{"wrong answer keeps rate", 50, 4, false, 50, true},
		{"clamped at 100", 100, 2, true, 100, true},
		{"rounded to two decimals", 0, 3, true, 33.33, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := question.NextSuccessRate(tt.rate, tt.timesUsed, tt.correct)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

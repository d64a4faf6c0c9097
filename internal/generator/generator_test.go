package generator_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/generator"
	"github.com/tutorly/quizengine/internal/id"
)

func raw(prompt, qType, answer string) generator.RawQuestion {
	return generator.RawQuestion{
		Question:      prompt,
		Type:          qType,
		CorrectAnswer: generator.Answer(answer),
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		raw  generator.RawQuestion
		want string
	}{
		{"valid", raw("Is water wet at room temperature?", "TRUE_FALSE", "true"), ""},
		{"too short", raw("ab", "SHORT_ANSWER", "x"), generator.RejectShortPrompt},
		{"short after trim", raw("   short   ", "SHORT_ANSWER", "x"), generator.RejectShortPrompt},
		{"placeholder", raw("Explain the main idea of [TOPIC] briefly", "SHORT_ANSWER", "x"), generator.RejectPlaceholder},
		{"closing bracket only", raw("What does the array a] hold here?", "SHORT_ANSWER", "x"), generator.RejectPlaceholder},
		{"missing type", raw("What is the capital of France?", "", "Paris"), generator.RejectMissingType},
		{"missing answer", raw("What is the capital of France?", "SHORT_ANSWER", " "), generator.RejectMissingKey},
		{"unknown type", raw("What is the capital of France?", "ESSAY", "Paris"), generator.RejectUnknownType},
		{"mcq without options", raw("What is the capital of France?", "MCQ", "Paris"), generator.RejectFewMCQOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generator.Check(tt.raw); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAccept_DropsMalformedAndNormalizes(t *testing.T) {
	tf := raw("The sun rises in the east.", "truefalse", "true")
	tf.Options = []string{"true", "false"}

	mcq := raw("Which planet is largest?", "MultipleChoice", "Jupiter")
	mcq.Options = []string{"Mars", "Jupiter", "Venus"}
	mcq.Difficulty = "hard"

	raws := []generator.RawQuestion{
		tf,
		mcq,
		raw("ab", "SHORT_ANSWER", "x"),
		raw("Describe [TOPIC] in one line", "SHORT_ANSWER", "x"),
		raw("Fill in: water boils at ___ C", "fillblank", "100"),
	}

	got, rejected := generator.Accept(raws, "lesson-1")

	if len(rejected) != 2 || rejected[0] != generator.RejectShortPrompt || rejected[1] != generator.RejectPlaceholder {
		t.Errorf("expected short prompt and placeholder rejections, got %v", rejected)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 accepted, got %d", len(got))
	}

	if got[0].Type != question.TypeTrueFalse || got[0].Options != nil {
		t.Errorf("expected TRUE_FALSE without options, got %q %v", got[0].Type, got[0].Options)
	}
	if got[1].Type != question.TypeMCQ || got[1].Difficulty != question.DifficultyHard {
		t.Errorf("expected hard MCQ, got %q %q", got[1].Type, got[1].Difficulty)
	}
	if got[2].Type != question.TypeFillBlank || got[2].Difficulty != question.DifficultyMedium {
		t.Errorf("expected medium FILL_BLANK, got %q %q", got[2].Type, got[2].Difficulty)
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if !q.IsDynamic || q.TimesUsed != 0 || !id.IsDynamic(q.ID) {
			t.Errorf("expected dynamic question with zero usage, got %+v", q)
		}
		if q.LessonID != "lesson-1" {
			t.Errorf("expected lesson-1, got %q", q.LessonID)
		}
		if q.Points != 1 {
			t.Errorf("expected default points 1, got %d", q.Points)
		}
		if seen[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
		if strings.ContainsAny(q.Prompt, "[]") {
			t.Errorf("placeholder slipped through: %q", q.Prompt)
		}
	}
}

func TestAnswer_AcceptsLooseJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"correctAnswer": "Paris"}`, "Paris"},
		{`{"correctAnswer": true}`, "true"},
		{`{"correctAnswer": 2}`, "2"},
		{`{"correctAnswer": 2.5}`, "2.5"},
		{`{"correctAnswer": null}`, ""},
	}

	for _, tt := range tests {
		var r generator.RawQuestion
		if err := json.Unmarshal([]byte(tt.in), &r); err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.in, err)
		}
		if string(r.CorrectAnswer) != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.in, tt.want, r.CorrectAnswer)
		}
	}

	var r generator.RawQuestion
	if err := json.Unmarshal([]byte(`{"correctAnswer": {"a": 1}}`), &r); err == nil {
		t.Error("expected error for object answer")
	}
}

package attempt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/question"
)

func makeQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:            "q" + string(rune('A'+i)),
			LessonID:      "lesson-1",
			Type:          question.TypeShortAnswer,
			Prompt:        "Question " + string(rune('A'+i)),
			CorrectAnswer: "Answer " + string(rune('A'+i)),
			Difficulty:    question.DifficultyMedium,
		}
	}
	return qs
}

func TestNew_AnchorsOnFirstLesson(t *testing.T) {
	scope := attempt.UnitScope("unit-1", []string{"l2", "l1"}, makeQuestions(3))

	a, err := attempt.New("user-1", scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.LessonID != "l2" {
		t.Errorf("expected anchor %q, got %q", "l2", a.LessonID)
	}
	if a.TotalQuestions != 3 {
		t.Errorf("expected 3 questions, got %d", a.TotalQuestions)
	}
	if a.IsCompleted() {
		t.Error("new attempt should not be completed")
	}
	if a.ID == "" {
		t.Error("expected an id")
	}
}

func TestNew_RejectsInvalidScope(t *testing.T) {
	tests := []struct {
		name  string
		scope attempt.Scope
	}{
		{"no lessons", attempt.ComprehensiveScope("", nil, nil)},
		{"unit without id", attempt.UnitScope("", []string{"l1"}, nil)},
		{"subject without id", attempt.SubjectScope("", []string{"l1"}, nil)},
		{"unknown kind", attempt.Scope{Kind: "weekly", LessonIDs: []string{"l1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := attempt.New("user-1", tt.scope); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := attempt.New("", attempt.LessonScope("l1", nil)); err == nil {
		t.Error("expected error for empty user id")
	}
}

func TestQuestion_LooksUpFrozenSet(t *testing.T) {
	a, err := attempt.New("user-1", attempt.LessonScope("lesson-1", makeQuestions(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := a.Question("qB")
	if !ok {
		t.Fatal("expected question qB in frozen set")
	}
	if q.Prompt != "Question B" {
		t.Errorf("expected %q, got %q", "Question B", q.Prompt)
	}

	if _, ok := a.Question("missing"); ok {
		t.Error("expected missing question not to be found")
	}
}

func TestScope_JSONPreservesOrderAndKind(t *testing.T) {
	qs := makeQuestions(4)
	scope := attempt.ComprehensiveScope("subject-1", []string{"l3", "l1", "l2"}, qs)

	data, err := json.Marshal(scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["type"] != "comprehensive" {
		t.Errorf("expected type comprehensive, got %v", raw["type"])
	}
	if _, ok := raw["unitId"]; ok {
		t.Error("expected no unitId for comprehensive scope")
	}

	var decoded attempt.Scope
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Kind != attempt.KindComprehensive || decoded.SubjectID != "subject-1" {
		t.Errorf("unexpected scope header: %+v", decoded)
	}
	for i, q := range decoded.Questions {
		if q.ID != qs[i].ID {
			t.Errorf("position %d: expected %q, got %q", i, qs[i].ID, q.ID)
		}
	}
	if len(decoded.LessonIDs) != 3 || decoded.LessonIDs[0] != "l3" {
		t.Errorf("unexpected lessons: %v", decoded.LessonIDs)
	}
}

func TestScope_UntypedMetadataDefaultsToLesson(t *testing.T) {
	var s attempt.Scope
	if err := json.Unmarshal([]byte(`{"lessonsIncluded":["l1"],"questions":[]}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != attempt.KindLesson {
		t.Errorf("expected lesson kind, got %q", s.Kind)
	}
}

func TestComplete(t *testing.T) {
	a, _ := attempt.New("user-1", attempt.LessonScope("lesson-1", makeQuestions(2)))
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	a.Complete(attempt.Result{CorrectAnswers: 1, Percentage: 50, TimeSpent: 42}, at)

	if !a.IsCompleted() || !a.CompletedAt.Equal(at) {
		t.Errorf("expected completion at %v, got %v", at, a.CompletedAt)
	}
	if a.Score != 50 || a.CorrectAnswers != 1 || a.TimeSpent != 42 {
		t.Errorf("unexpected totals: %+v", a)
	}
}

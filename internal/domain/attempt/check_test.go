package attempt_test

import (
	"testing"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/question"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		qType   question.Type
		correct string
		answer  string
		want    bool
	}{
		{"mcq exact", question.TypeMCQ, "Paris", "paris", true},
		{"mcq trims", question.TypeMCQ, "Paris", "  PARIS ", true},
		{"mcq no space tolerance", question.TypeMCQ, "New York", "newyork", false},
		{"mcq wrong", question.TypeMCQ, "Paris", "Rome", false},

		{"true false arabic true vs english", question.TypeTrueFalse, "true", "صح", true},
		{"true false arabic true vs arabic", question.TypeTrueFalse, "صحيح", "صح", true},
		{"true false arabic true vs 1", question.TypeTrueFalse, "1", "صح", true},
		{"true false arabic false vs 0", question.TypeTrueFalse, "0", "خطأ", true},
		{"true false arabic false vs english", question.TypeTrueFalse, "FALSE", "خطأ", true},
		{"true false arabic true vs false", question.TypeTrueFalse, "false", "صح", false},
		{"true false english exact", question.TypeTrueFalse, "True", "true", true},
		{"true false english vs arabic canonical", question.TypeTrueFalse, "صح", "true", false},

		{"short answer spacing", question.TypeShortAnswer, "photo synthesis", "photosynthesis", true},
		{"fill blank spacing", question.TypeFillBlank, "H2O", " h 2 o ", true},
		{"short answer spelling", question.TypeShortAnswer, "photosynthesis", "fotosynthesis", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := question.Question{Type: tt.qType, CorrectAnswer: tt.correct}
			if got := attempt.CheckAnswer(q, tt.answer); got != tt.want {
				t.Errorf("CheckAnswer(%q vs %q) = %v, want %v", tt.answer, tt.correct, got, tt.want)
			}
		})
	}
}

func answers(total, correct int) []attempt.Answer {
	out := make([]attempt.Answer, total)
	for i := range out {
		out[i] = attempt.Answer{QuestionID: string(rune('a' + i)), IsCorrect: i < correct, TimeSpent: 10}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		pct     float64
		passed  bool
	}{
		{"seven of ten passes", 10, 7, 70, true},
		{"five of ten fails", 10, 5, 50, false},
		{"six of ten is the threshold", 10, 6, 60, true},
		{"no answers", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := attempt.Score(answers(tt.total, tt.correct))
			if r.Percentage != tt.pct {
				t.Errorf("expected %v%%, got %v%%", tt.pct, r.Percentage)
			}
			if r.Passed != tt.passed {
				t.Errorf("expected passed=%v, got %v", tt.passed, r.Passed)
			}
			if r.CorrectAnswers != tt.correct {
				t.Errorf("expected %d correct, got %d", tt.correct, r.CorrectAnswers)
			}
			if r.TimeSpent != tt.total*10 {
				t.Errorf("expected %ds, got %ds", tt.total*10, r.TimeSpent)
			}
		})
	}
}

package attempt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tutorly/quizengine/internal/domain/question"
)

var (
	trueWords  = []string{"true", "صح", "صحيح", "1"}
	falseWords = []string{"false", "خطأ", "خاطئ", "0"}
)

// CheckAnswer compares a raw user answer with the question's canonical one.
// Both sides are trimmed, NFC-normalized and case-folded first.
//
// TRUE_FALSE also accepts "صح" for any canonical true word and "خطأ" for
// any canonical false word. SHORT_ANSWER and FILL_BLANK also accept a match
// once all whitespace is removed from both sides.
func CheckAnswer(q question.Question, answer string) bool {
	got := normalizeAnswer(answer)
	want := normalizeAnswer(q.CorrectAnswer)

	if got == want {
		return true
	}

	switch q.Type {
	case question.TypeTrueFalse:
		return (got == "صح" && contains(trueWords, want)) ||
			(got == "خطأ" && contains(falseWords, want))
	case question.TypeShortAnswer, question.TypeFillBlank:
		return stripSpaces(got) == stripSpaces(want)
	default:
		return false
	}
}

func normalizeAnswer(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Fold().String(s)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func contains(words []string, s string) bool {
	for _, w := range words {
		if w == s {
			return true
		}
	}
	return false
}

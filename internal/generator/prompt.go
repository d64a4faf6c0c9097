package generator

import (
	"fmt"
	"strings"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
)

const systemPrompt = "You write short, unambiguous quiz questions for school students. Never use placeholders."

// buildPrompt asks for a mixed batch about one lesson. The JSON schema goes
// last so it is the final thing a small model reads.
func buildPrompt(lesson *curriculum.Lesson, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/no_think\nWrite %d quiz questions about the lesson below.\n\n", count)
	fmt.Fprintf(&b, "LESSON:\n%s\n", lesson.Title)
	if lesson.Summary != "" {
		fmt.Fprintf(&b, "\nSUMMARY:\n%s\n", lesson.Summary)
	}

	b.WriteString(`
RULES:
- type is one of MCQ, TRUE_FALSE, SHORT_ANSWER, FILL_BLANK.
- MCQ questions have 4 options and correctAnswer is the exact option text.
- TRUE_FALSE questions have no options and correctAnswer is "true" or "false".
- difficulty is one of EASY, MEDIUM, HARD.
- Do not use square brackets anywhere in the question text.

Respond with ONLY this JSON, no markdown:
{"questions": [{"question": "...", "type": "MCQ", "options": ["..."], "correctAnswer": "...", "explanation": "...", "difficulty": "MEDIUM", "points": 1}]}`)

	return b.String()
}

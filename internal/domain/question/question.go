package question

import (
	"errors"
	"strings"
	"time"
)

type Type string

const (
	TypeMCQ         Type = "MCQ"
	TypeTrueFalse   Type = "TRUE_FALSE"
	TypeShortAnswer Type = "SHORT_ANSWER"
	TypeFillBlank   Type = "FILL_BLANK"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"

	// DifficultyMixed is a filter value only; no question carries it.
	DifficultyMixed Difficulty = "MIXED"
)

// Question is a single assessable item. Static questions live in the store
// and carry usage statistics; dynamic ones exist only inside one quiz.
type Question struct {
	ID            string     `json:"id" bson:"_id"`
	LessonID      string     `json:"lessonId" bson:"lesson_id"`
	Type          Type       `json:"type" bson:"type"`
	Prompt        string     `json:"question" bson:"question"`
	Options       []string   `json:"options,omitempty" bson:"options,omitempty"`
	CorrectAnswer string     `json:"correctAnswer" bson:"correct_answer"`
	Explanation   string     `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Difficulty    Difficulty `json:"difficulty" bson:"difficulty"`
	Points        int        `json:"points" bson:"points"`
	IsDynamic     bool       `json:"isDynamic" bson:"is_dynamic"`
	IsActive      bool       `json:"isActive" bson:"is_active"`
	TimesUsed     int        `json:"timesUsed" bson:"times_used"`
	SuccessRate   float64    `json:"successRate" bson:"success_rate"`
	LastUsedAt    *time.Time `json:"lastUsedAt,omitempty" bson:"last_used_at,omitempty"`
}

// typeAliases maps upper-cased spellings seen in generated content
// to the canonical enum.
var typeAliases = map[string]Type{
	"MCQ":            TypeMCQ,
	"MULTIPLECHOICE": TypeMCQ,
	"TRUE_FALSE":     TypeTrueFalse,
	"TRUEFALSE":      TypeTrueFalse,
	"SHORT_ANSWER":   TypeShortAnswer,
	"SHORTANSWER":    TypeShortAnswer,
	"FILL_BLANK":     TypeFillBlank,
	"FILLBLANK":      TypeFillBlank,
}

// NormalizeType maps a free-form type name onto the canonical enum,
// case-insensitively. Unknown names are returned upper-cased with ok=false.
func NormalizeType(raw string) (Type, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if t, ok := typeAliases[upper]; ok {
		return t, true
	}
	return Type(upper), false
}

func (t Type) Valid() bool {
	switch t {
	case TypeMCQ, TypeTrueFalse, TypeShortAnswer, TypeFillBlank:
		return true
	}
	return false
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// IsFilter reports whether d narrows a selection. Empty and MIXED do not.
func (d Difficulty) IsFilter() bool {
	return d != "" && d != DifficultyMixed
}

// Validate checks the shape invariants of an authored question.
func (q *Question) Validate() error {
	if q.LessonID == "" {
		return errors.New("question lesson id cannot be empty")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("question prompt cannot be empty")
	}
	if !q.Type.Valid() {
		return errors.New("question type must be one of MCQ, TRUE_FALSE, SHORT_ANSWER, FILL_BLANK")
	}
	if !q.Difficulty.Valid() {
		return errors.New("question difficulty must be one of EASY, MEDIUM, HARD")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return errors.New("question correct answer cannot be empty")
	}
	if q.Type == TypeMCQ && len(q.Options) < 2 {
		return errors.New("multiple choice question needs at least two options")
	}
	if q.Type == TypeTrueFalse && len(q.Options) > 0 {
		return errors.New("true/false question cannot carry options")
	}
	if q.SuccessRate < 0 || q.SuccessRate > 100 {
		return errors.New("success rate must be between 0 and 100")
	}
	if q.TimesUsed < 0 {
		return errors.New("times used cannot be negative")
	}
	return nil
}

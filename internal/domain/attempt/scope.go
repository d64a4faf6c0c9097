package attempt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tutorly/quizengine/internal/domain/question"
)

type Kind string

const (
	KindLesson        Kind = "lesson"
	KindUnit          Kind = "unit"
	KindSubject       Kind = "subject"
	KindComprehensive Kind = "comprehensive"
)

// Scope records what an attempt covers: which lessons, under which unit or
// subject, and the exact ordered questions presented.
//
//	lesson:        LessonIDs (one), Questions
//	unit:          UnitID, LessonIDs, Questions
//	subject:       SubjectID, LessonIDs, Questions
//	comprehensive: LessonIDs, Questions, optional SubjectID
type Scope struct {
	Kind      Kind
	UnitID    string
	SubjectID string
	LessonIDs []string
	Questions []question.Question
}

func LessonScope(lessonID string, qs []question.Question) Scope {
	return Scope{Kind: KindLesson, LessonIDs: []string{lessonID}, Questions: qs}
}

func UnitScope(unitID string, lessonIDs []string, qs []question.Question) Scope {
	return Scope{Kind: KindUnit, UnitID: unitID, LessonIDs: lessonIDs, Questions: qs}
}

func SubjectScope(subjectID string, lessonIDs []string, qs []question.Question) Scope {
	return Scope{Kind: KindSubject, SubjectID: subjectID, LessonIDs: lessonIDs, Questions: qs}
}

// ComprehensiveScope builds a scope over recently completed lessons.
// subjectID may be empty when no subject filter was applied.
func ComprehensiveScope(subjectID string, lessonIDs []string, qs []question.Question) Scope {
	return Scope{Kind: KindComprehensive, SubjectID: subjectID, LessonIDs: lessonIDs, Questions: qs}
}

func (s Scope) Validate() error {
	if len(s.LessonIDs) == 0 {
		return errors.New("scope must include at least one lesson")
	}
	switch s.Kind {
	case KindLesson:
		if len(s.LessonIDs) != 1 {
			return errors.New("lesson scope must name exactly one lesson")
		}
	case KindUnit:
		if s.UnitID == "" {
			return errors.New("unit scope requires a unit id")
		}
	case KindSubject:
		if s.SubjectID == "" {
			return errors.New("subject scope requires a subject id")
		}
	case KindComprehensive:
	default:
		return fmt.Errorf("unknown scope kind %q", s.Kind)
	}
	return nil
}

// scopeJSON is the persisted metadata layout.
type scopeJSON struct {
	Type            Kind                `json:"type"`
	UnitID          string              `json:"unitId,omitempty"`
	SubjectID       string              `json:"subjectId,omitempty"`
	LessonsIncluded []string            `json:"lessonsIncluded"`
	Questions       []question.Question `json:"questions"`
}

func (s Scope) MarshalJSON() ([]byte, error) {
	lessons := s.LessonIDs
	if lessons == nil {
		lessons = []string{}
	}
	qs := s.Questions
	if qs == nil {
		qs = []question.Question{}
	}
	return json.Marshal(scopeJSON{
		Type:            s.Kind,
		UnitID:          s.UnitID,
		SubjectID:       s.SubjectID,
		LessonsIncluded: lessons,
		Questions:       qs,
	})
}

// UnmarshalJSON decodes persisted metadata. A blob without a type is
// read as a lesson scope.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var raw scopeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == "" {
		raw.Type = KindLesson
	}

	*s = Scope{
		Kind:      raw.Type,
		UnitID:    raw.UnitID,
		SubjectID: raw.SubjectID,
		LessonIDs: raw.LessonsIncluded,
		Questions: raw.Questions,
	}
	return s.Validate()
}

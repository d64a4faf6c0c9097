package curriculum

import (
	"time"

	"github.com/tutorly/quizengine/internal/id"
)

// Subject is the top of the hierarchy:
// Subject → Units → Lessons → Questions.
type Subject struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// New creates a Subject with a generated ID.
func New(name string) *Subject {
	return &Subject{
		ID:   id.GenerateID(),
		Name: name,
	}
}

type Unit struct {
	ID        string `json:"id" bson:"_id"`
	SubjectID string `json:"subjectId" bson:"subject_id"`
	Title     string `json:"title" bson:"title"`
	Order     int    `json:"order" bson:"order"`
}

func NewUnit(subjectID, title string, order int) *Unit {
	return &Unit{
		ID:        id.GenerateID(),
		SubjectID: subjectID,
		Title:     title,
		Order:     order,
	}
}

// Lesson is the unit of quiz content. Summary feeds question generation.
type Lesson struct {
	ID      string `json:"id" bson:"_id"`
	UnitID  string `json:"unitId" bson:"unit_id"`
	Title   string `json:"title" bson:"title"`
	Summary string `json:"summary,omitempty" bson:"summary,omitempty"`
	Order   int    `json:"order" bson:"order"`
}

func NewLesson(unitID, title, summary string, order int) *Lesson {
	return &Lesson{
		ID:      id.GenerateID(),
		UnitID:  unitID,
		Title:   title,
		Summary: summary,
		Order:   order,
	}
}

// Progress marks a lesson as completed by a user.
type Progress struct {
	UserID      string    `json:"userId" bson:"user_id"`
	LessonID    string    `json:"lessonId" bson:"lesson_id"`
	CompletedAt time.Time `json:"completedAt" bson:"completed_at"`
}

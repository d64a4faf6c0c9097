package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorly/quizengine/internal/store"
)

// Export walks the store and returns every subject with its units,
// lessons and authored questions. Usage statistics are not exported.
func Export(ctx context.Context, s store.Store) (*Catalogue, error) {
	subjects, err := s.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	c := &Catalogue{
		Version:    Version,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Subjects:   make([]Subject, 0, len(subjects)),
	}

	for _, subj := range subjects {
		units, err := s.ListUnits(ctx, subj.ID)
		if err != nil {
			return nil, fmt.Errorf("list units of %s: %w", subj.ID, err)
		}

		exportSubj := Subject{Name: subj.Name, Units: make([]Unit, 0, len(units))}
		for _, unit := range units {
			lessons, err := s.ListLessonsByUnit(ctx, unit.ID)
			if err != nil {
				return nil, fmt.Errorf("list lessons of %s: %w", unit.ID, err)
			}

			exportUnit := Unit{Title: unit.Title, Lessons: make([]Lesson, 0, len(lessons))}
			for _, lesson := range lessons {
				questions, err := s.ListQuestionsByLesson(ctx, lesson.ID)
				if err != nil {
					return nil, fmt.Errorf("list questions of %s: %w", lesson.ID, err)
				}

				exportLesson := Lesson{Key: lesson.ID, Title: lesson.Title, Summary: lesson.Summary}
				for _, q := range questions {
					if q.IsDynamic {
						continue
					}
					exportLesson.Questions = append(exportLesson.Questions, Question{
						Type:          string(q.Type),
						Question:      q.Prompt,
						Options:       q.Options,
						CorrectAnswer: q.CorrectAnswer,
						Explanation:   q.Explanation,
						Difficulty:    string(q.Difficulty),
						Points:        q.Points,
						Inactive:      !q.IsActive,
					})
				}
				exportUnit.Lessons = append(exportUnit.Lessons, exportLesson)
			}
			exportSubj.Units = append(exportSubj.Units, exportUnit)
		}
		c.Subjects = append(c.Subjects, exportSubj)
	}

	return c, nil
}

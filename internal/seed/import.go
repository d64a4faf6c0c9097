package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/id"
	"github.com/tutorly/quizengine/internal/store"
)

type Result struct {
	SubjectsCreated  int `json:"subjects_created"`
	UnitsCreated     int `json:"units_created"`
	LessonsCreated   int `json:"lessons_created"`
	QuestionsCreated int `json:"questions_created"`
	ProgressRecorded int `json:"progress_recorded"`
	Skipped          int `json:"skipped"`
}

// Import creates everything in c as new entities. It is best effort: an
// entry that fails to save is logged and skipped along with its children.
func Import(ctx context.Context, s store.Store, c *Catalogue, logger *slog.Logger) (Result, error) {
	var res Result
	lessonIDs := make(map[string]string) // catalogue key → lesson ID

	for _, subj := range c.Subjects {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		newSubj := curriculum.New(subj.Name)
		if err := s.SaveSubject(ctx, newSubj); err != nil {
			logger.Error("failed to create subject", "name", subj.Name, "error", err)
			res.Skipped++
			continue
		}
		res.SubjectsCreated++

		for ui, unit := range subj.Units {
			newUnit := curriculum.NewUnit(newSubj.ID, unit.Title, ui)
			if err := s.SaveUnit(ctx, newUnit); err != nil {
				logger.Error("failed to create unit", "title", unit.Title, "error", err)
				res.Skipped++
				continue
			}
			res.UnitsCreated++

			for li, lesson := range unit.Lessons {
				newLesson := curriculum.NewLesson(newUnit.ID, lesson.Title, lesson.Summary, li)
				if err := s.SaveLesson(ctx, newLesson); err != nil {
					logger.Error("failed to create lesson", "title", lesson.Title, "error", err)
					res.Skipped++
					continue
				}
				res.LessonsCreated++
				lessonIDs[lesson.key()] = newLesson.ID

				for _, q := range lesson.Questions {
					stored, err := toQuestion(newLesson.ID, q)
					if err != nil {
						logger.Warn("skipping invalid question", "lesson_id", newLesson.ID, "error", err)
						res.Skipped++
						continue
					}
					if err := s.SaveQuestion(ctx, stored); err != nil {
						logger.Error("failed to save question", "lesson_id", newLesson.ID, "error", err)
						res.Skipped++
						continue
					}
					res.QuestionsCreated++
				}
			}
		}
	}

	for _, p := range c.Progress {
		lessonID, ok := lessonIDs[p.Lesson]
		if !ok {
			logger.Warn("progress references unknown lesson", "lesson", p.Lesson, "user_id", p.UserID)
			res.Skipped++
			continue
		}
		at := p.CompletedAt
		if at.IsZero() {
			at = time.Now()
		}
		err := s.MarkLessonCompleted(ctx, curriculum.Progress{
			UserID:      p.UserID,
			LessonID:    lessonID,
			CompletedAt: at.UTC(),
		})
		if err != nil {
			logger.Error("failed to record progress", "lesson_id", lessonID, "user_id", p.UserID, "error", err)
			res.Skipped++
			continue
		}
		res.ProgressRecorded++
	}

	return res, nil
}

// toQuestion turns a catalogue entry into a fresh static question.
// Difficulty defaults to MEDIUM and points to 1.
func toQuestion(lessonID string, q Question) (*question.Question, error) {
	qt, ok := question.NormalizeType(q.Type)
	if !ok {
		return nil, fmt.Errorf("unknown question type %q", q.Type)
	}

	difficulty := question.Difficulty(q.Difficulty)
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}
	points := q.Points
	if points <= 0 {
		points = 1
	}

	stored := &question.Question{
		ID:            id.GenerateID(),
		LessonID:      lessonID,
		Type:          qt,
		Prompt:        q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    difficulty,
		Points:        points,
		IsActive:      !q.Inactive,
	}
	if qt == question.TypeTrueFalse {
		stored.Options = nil
	}

	if err := stored.Validate(); err != nil {
		return nil, err
	}
	return stored, nil
}

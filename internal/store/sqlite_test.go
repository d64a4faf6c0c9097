package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedCurriculum creates one subject with two units of two lessons each.
func seedCurriculum(t *testing.T, s *store.SQLiteStore) (*curriculum.Subject, []*curriculum.Unit, []*curriculum.Lesson) {
	t.Helper()
	ctx := context.Background()

	subj := curriculum.New("Biology")
	if err := s.SaveSubject(ctx, subj); err != nil {
		t.Fatalf("save subject: %v", err)
	}

	var units []*curriculum.Unit
	var lessons []*curriculum.Lesson
	for i := 0; i < 2; i++ {
		u := curriculum.NewUnit(subj.ID, "Unit "+string(rune('A'+i)), i)
		if err := s.SaveUnit(ctx, u); err != nil {
			t.Fatalf("save unit: %v", err)
		}
		units = append(units, u)
		for j := 0; j < 2; j++ {
			l := curriculum.NewLesson(u.ID, "Lesson", "", j)
			if err := s.SaveLesson(ctx, l); err != nil {
				t.Fatalf("save lesson: %v", err)
			}
			lessons = append(lessons, l)
		}
	}
	return subj, units, lessons
}

func saveQuestion(t *testing.T, s *store.SQLiteStore, id, lessonID string, timesUsed int, d question.Difficulty, qt question.Type) {
	t.Helper()
	q := &question.Question{
		ID:            id,
		LessonID:      lessonID,
		Type:          qt,
		Prompt:        "Prompt for " + id,
		CorrectAnswer: "answer",
		Difficulty:    d,
		Points:        1,
		IsActive:      true,
		TimesUsed:     timesUsed,
	}
	if qt == question.TypeMCQ {
		q.Options = []string{"answer", "other"}
	}
	if err := s.SaveQuestion(context.Background(), q); err != nil {
		t.Fatalf("save question: %v", err)
	}
}

func TestFindQuestions_FiltersAndOrdersLeastUsedFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCurriculum(t, s)

	saveQuestion(t, s, "q-heavy", lessons[0].ID, 9, question.DifficultyEasy, question.TypeMCQ)
	saveQuestion(t, s, "q-light", lessons[0].ID, 1, question.DifficultyEasy, question.TypeShortAnswer)
	saveQuestion(t, s, "q-hard", lessons[0].ID, 0, question.DifficultyHard, question.TypeShortAnswer)
	saveQuestion(t, s, "q-other", lessons[1].ID, 0, question.DifficultyEasy, question.TypeMCQ)

	inactive := &question.Question{ID: "q-off", LessonID: lessons[0].ID, Type: question.TypeShortAnswer,
		Prompt: "x", CorrectAnswer: "x", Difficulty: question.DifficultyEasy}
	if err := s.SaveQuestion(ctx, inactive); err != nil {
		t.Fatalf("save question: %v", err)
	}
	dynamic := &question.Question{ID: "dynamic_1", LessonID: lessons[0].ID, Type: question.TypeShortAnswer,
		Prompt: "x", CorrectAnswer: "x", Difficulty: question.DifficultyEasy, IsActive: true, IsDynamic: true}
	if err := s.SaveQuestion(ctx, dynamic); err != nil {
		t.Fatalf("save question: %v", err)
	}

	got, err := s.FindQuestions(ctx, store.QuestionFilter{
		LessonIDs:  []string{lessons[0].ID},
		Difficulty: question.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "q-light" || got[1].ID != "q-heavy" {
		t.Fatalf("expected [q-light q-heavy], got %v", ids(got))
	}
	if len(got[1].Options) != 2 {
		t.Errorf("expected options to round-trip, got %v", got[1].Options)
	}

	got, err = s.FindQuestions(ctx, store.QuestionFilter{
		LessonIDs:  []string{lessons[0].ID, lessons[1].ID},
		Difficulty: question.DifficultyMixed,
		Types:      []question.Type{question.TypeMCQ},
		ExcludeIDs: []string{"q-other"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q-heavy" {
		t.Fatalf("expected [q-heavy], got %v", ids(got))
	}

	got, err = s.FindQuestions(ctx, store.QuestionFilter{LessonIDs: []string{lessons[0].ID}, Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q-hard" {
		t.Fatalf("expected [q-hard], got %v", ids(got))
	}
}

func ids(qs []question.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestMarkQuestionUsedAndSuccessRate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCurriculum(t, s)
	saveQuestion(t, s, "q1", lessons[0].ID, 0, question.DifficultyEasy, question.TypeShortAnswer)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := s.MarkQuestionUsed(ctx, "q1", at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := s.UpdateSuccessRate(ctx, "q1", 66.67); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, err := s.GetQuestion(ctx, "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TimesUsed != 3 {
		t.Errorf("expected times used 3, got %d", q.TimesUsed)
	}
	if q.SuccessRate != 66.67 {
		t.Errorf("expected success rate 66.67, got %v", q.SuccessRate)
	}
	if q.LastUsedAt == nil || !q.LastUsedAt.Equal(at) {
		t.Errorf("expected last used %v, got %v", at, q.LastUsedAt)
	}

	if err := s.MarkQuestionUsed(ctx, "missing", at); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetQuestion(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAttempt_RoundTripAndCompletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, units, lessons := seedCurriculum(t, s)

	frozen := []question.Question{
		{ID: "q2", LessonID: lessons[1].ID, Type: question.TypeMCQ, Prompt: "Second?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{ID: "dynamic_x", LessonID: lessons[0].ID, Type: question.TypeTrueFalse, Prompt: "First?", CorrectAnswer: "true", IsDynamic: true},
	}
	a, err := attempt.New("user-1", attempt.UnitScope(units[0].ID, []string{lessons[0].ID, lessons[1].ID}, frozen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	got, err := s.GetAttempt(ctx, a.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if got.Scope.Kind != attempt.KindUnit || got.Scope.UnitID != units[0].ID {
		t.Errorf("unexpected scope: %+v", got.Scope)
	}
	if len(got.Scope.Questions) != 2 || got.Scope.Questions[0].ID != "q2" || !got.Scope.Questions[1].IsDynamic {
		t.Errorf("frozen questions did not round-trip: %+v", got.Scope.Questions)
	}
	if got.CompletedAt != nil {
		t.Error("expected attempt to be in progress")
	}

	got.Complete(attempt.Result{CorrectAnswers: 1, Percentage: 50, TimeSpent: 30}, time.Now())
	if err := s.CompleteAttempt(ctx, got); err != nil {
		t.Fatalf("complete attempt: %v", err)
	}

	again, err := s.GetAttempt(ctx, a.ID)
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if again.Score != 50 || again.CorrectAnswers != 1 || again.TimeSpent != 30 || again.CompletedAt == nil {
		t.Errorf("completion not persisted: %+v", again)
	}

	if _, err := s.GetAttempt(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnswers_WriteOnceAndRecency(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCurriculum(t, s)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mine, _ := attempt.New("user-1", attempt.LessonScope(lessons[0].ID, nil))
	theirs, _ := attempt.New("user-2", attempt.LessonScope(lessons[0].ID, nil))
	for _, a := range []*attempt.QuizAttempt{mine, theirs} {
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("save attempt: %v", err)
		}
	}

	for i, qid := range []string{"q1", "q2", "q3"} {
		err := s.SaveAnswer(ctx, attempt.Answer{
			AttemptID: mine.ID, QuestionID: qid, UserAnswer: "x",
			IsCorrect: i%2 == 0, TimeSpent: 5, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save answer: %v", err)
		}
	}
	if err := s.SaveAnswer(ctx, attempt.Answer{AttemptID: theirs.ID, QuestionID: "q9", CreatedAt: base}); err != nil {
		t.Fatalf("save answer: %v", err)
	}

	err := s.SaveAnswer(ctx, attempt.Answer{AttemptID: mine.ID, QuestionID: "q1", CreatedAt: base})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	answers, err := s.ListAnswers(ctx, mine.ID)
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 3 || !answers[0].IsCorrect || answers[1].IsCorrect {
		t.Errorf("unexpected answers: %+v", answers)
	}

	recent, err := s.RecentAnsweredQuestionIDs(ctx, "user-1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0] != "q3" || recent[1] != "q2" {
		t.Errorf("expected [q3 q2], got %v", recent)
	}
}

func TestListAttempts_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCurriculum(t, s)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var created []string
	for i := 0; i < 3; i++ {
		lesson := lessons[0].ID
		if i == 1 {
			lesson = lessons[1].ID
		}
		a, _ := attempt.New("user-1", attempt.LessonScope(lesson, nil))
		a.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("save attempt: %v", err)
		}
		created = append(created, a.ID)
	}

	all, err := s.ListAttempts(ctx, store.AttemptFilter{UserID: "user-1"})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(all) != 3 || all[0].ID != created[2] || all[2].ID != created[0] {
		t.Errorf("unexpected order: %v", all)
	}

	byLesson, err := s.ListAttempts(ctx, store.AttemptFilter{LessonID: lessons[0].ID, Limit: 1})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(byLesson) != 1 || byLesson[0].ID != created[2] {
		t.Errorf("expected newest lesson-0 attempt, got %v", byLesson)
	}
}

func TestRecentCompletedLessons(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, _, lessons := seedCurriculum(t, s)

	other := curriculum.New("Chemistry")
	s.SaveSubject(ctx, other)
	otherUnit := curriculum.NewUnit(other.ID, "Atoms", 0)
	s.SaveUnit(ctx, otherUnit)
	otherLesson := curriculum.NewLesson(otherUnit.ID, "Electrons", "", 0)
	s.SaveLesson(ctx, otherLesson)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := []*curriculum.Lesson{lessons[2], otherLesson, lessons[0]}
	for i, l := range order {
		err := s.MarkLessonCompleted(ctx, curriculum.Progress{UserID: "user-1", LessonID: l.ID, CompletedAt: base.Add(time.Duration(i) * time.Hour)})
		if err != nil {
			t.Fatalf("mark completed: %v", err)
		}
	}

	got, err := s.RecentCompletedLessons(ctx, "user-1", "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != lessons[0].ID || got[2].ID != lessons[2].ID {
		t.Errorf("unexpected order: %v", got)
	}

	got, err = s.RecentCompletedLessons(ctx, "user-1", other.ID, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != otherLesson.ID {
		t.Errorf("expected only the chemistry lesson, got %v", got)
	}

	none, err := s.RecentCompletedLessons(ctx, "user-2", "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no lessons, got %d", len(none))
	}
}

func TestListLessonsBySubject_CurriculumOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	subj, units, lessons := seedCurriculum(t, s)

	got, err := s.ListLessonsBySubject(ctx, subj.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 lessons, got %d", len(got))
	}
	for i := range lessons {
		if got[i].ID != lessons[i].ID {
			t.Errorf("position %d: expected %q, got %q", i, lessons[i].ID, got[i].ID)
		}
	}

	inUnit, err := s.ListLessonsByUnit(ctx, units[1].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inUnit) != 2 || inUnit[0].ID != lessons[2].ID {
		t.Errorf("unexpected unit lessons: %v", inUnit)
	}
}

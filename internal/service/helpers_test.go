package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/event"
	"github.com/tutorly/quizengine/internal/generator"
	"github.com/tutorly/quizengine/internal/service"
	"github.com/tutorly/quizengine/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// stubGenerator returns count valid questions unless raws or err is set.
type stubGenerator struct {
	mu    sync.Mutex
	calls []generateCall
	raws  []generator.RawQuestion
	err   error
}

type generateCall struct {
	LessonID string
	Count    int
	UserID   string
}

func (g *stubGenerator) Generate(_ context.Context, lessonID string, count int, userID string) ([]generator.RawQuestion, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, generateCall{LessonID: lessonID, Count: count, UserID: userID})

	if g.err != nil {
		return nil, g.err
	}
	if g.raws != nil {
		return g.raws, nil
	}

	out := make([]generator.RawQuestion, count)
	for i := range out {
		out[i] = generator.RawQuestion{
			Question:      fmt.Sprintf("Generated question number %d?", i+1),
			Type:          "MCQ",
			Options:       []string{"alpha", "beta", "gamma"},
			CorrectAnswer: "alpha",
			Difficulty:    "MEDIUM",
		}
	}
	return out, nil
}

func (g *stubGenerator) Calls() []generateCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]generateCall(nil), g.calls...)
}

// recordingPublisher keeps every published event type.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

var _ event.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

type fixture struct {
	store    *store.SQLiteStore
	gen      *stubGenerator
	events   *recordingPublisher
	bank     *service.QuestionBankService
	quiz     *service.QuizService
	composer *service.Composer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newTestStore(t)
	gen := &stubGenerator{}
	events := &recordingPublisher{}
	logger := discardLogger()

	bank := service.NewQuestionBankService(s, gen, logger)
	return &fixture{
		store:    s,
		gen:      gen,
		events:   events,
		bank:     bank,
		quiz:     service.NewQuizService(bank, s, bank, events, logger),
		composer: service.NewComposer(bank, s, events, logger),
	}
}

// unitWithLessons creates a subject holding one unit with n lessons.
func (f *fixture) unitWithLessons(t *testing.T, n int) (*curriculum.Subject, *curriculum.Unit, []*curriculum.Lesson) {
	t.Helper()
	ctx := context.Background()

	subj := curriculum.New("Mathematics")
	if err := f.store.SaveSubject(ctx, subj); err != nil {
		t.Fatalf("save subject: %v", err)
	}
	return subj, f.addUnit(t, subj.ID, n), f.lessonsOf(t, subj.ID)
}

func (f *fixture) addUnit(t *testing.T, subjectID string, n int) *curriculum.Unit {
	t.Helper()
	ctx := context.Background()

	u := curriculum.NewUnit(subjectID, "Unit", 0)
	if err := f.store.SaveUnit(ctx, u); err != nil {
		t.Fatalf("save unit: %v", err)
	}
	for i := 0; i < n; i++ {
		l := curriculum.NewLesson(u.ID, fmt.Sprintf("Lesson %d", i+1), "", i)
		if err := f.store.SaveLesson(ctx, l); err != nil {
			t.Fatalf("save lesson: %v", err)
		}
	}
	return u
}

func (f *fixture) lessonsOf(t *testing.T, subjectID string) []*curriculum.Lesson {
	t.Helper()
	lessons, err := f.store.ListLessonsBySubject(context.Background(), subjectID)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	return lessons
}

// addQuestions stores n authored MCQ questions for a lesson.
func (f *fixture) addQuestions(t *testing.T, lessonID string, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s-q%d", lessonID, i)
		q := &question.Question{
			ID:            ids[i],
			LessonID:      lessonID,
			Type:          question.TypeMCQ,
			Prompt:        fmt.Sprintf("Stored question %d?", i),
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Difficulty:    question.DifficultyMedium,
			Points:        1,
			IsActive:      true,
		}
		if err := f.store.SaveQuestion(context.Background(), q); err != nil {
			t.Fatalf("save question: %v", err)
		}
	}
	return ids
}

func countBySource(qs []question.Question) (static, dynamic int) {
	for _, q := range qs {
		if q.IsDynamic {
			dynamic++
		} else {
			static++
		}
	}
	return static, dynamic
}

package seed_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tutorly/quizengine/internal/domain/question"
	"github.com/tutorly/quizengine/internal/seed"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Load(strings.NewReader("version: \"1.0\"\nsubjectz: []\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestImport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := seed.LoadFile(filepath.Join("testdata", "catalogue.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	res, err := seed.Import(ctx, s, c, discardLogger())
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := seed.Result{
		SubjectsCreated:  1,
		UnitsCreated:     1,
		LessonsCreated:   2,
		QuestionsCreated: 3,
		ProgressRecorded: 2,
		Skipped:          2, // the essay question and the unknown lesson
	}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}

	subjects, _ := s.ListSubjects(ctx)
	lessons, err := s.ListLessonsBySubject(ctx, subjects[0].ID)
	if err != nil || len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d (%v)", len(lessons), err)
	}

	qs, _ := s.ListQuestionsByLesson(ctx, lessons[0].ID)
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions in the first lesson, got %d", len(qs))
	}
	tf := qs[1]
	if tf.Type != question.TypeTrueFalse || len(tf.Options) != 0 {
		t.Errorf("expected normalized true/false question without options, got %+v", tf)
	}
	if tf.Difficulty != question.DifficultyMedium || tf.Points != 1 || !tf.IsActive {
		t.Errorf("expected defaults to be applied, got %+v", tf)
	}

	recent, err := s.RecentCompletedLessons(ctx, "student-1", "", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 completed lessons, got %d", len(recent))
	}
}

func TestExport_RoundTripsThroughYAML(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c, err := seed.LoadFile(filepath.Join("testdata", "catalogue.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := seed.Import(ctx, s, c, discardLogger()); err != nil {
		t.Fatalf("import: %v", err)
	}

	exported, err := seed.Export(ctx, s)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported.Subjects) != 1 || len(exported.Subjects[0].Units[0].Lessons) != 2 {
		t.Fatalf("unexpected export %+v", exported)
	}
	first := exported.Subjects[0].Units[0].Lessons[0]
	if first.Title != "Newton's first law" || len(first.Questions) != 2 {
		t.Errorf("unexpected first lesson %+v", first)
	}

	var buf bytes.Buffer
	if err := seed.WriteYAML(&buf, exported); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	// Import the export into a second store and compare counts.
	again, err := seed.Load(&buf)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	res, err := seed.Import(ctx, newTestStore(t), again, discardLogger())
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if res.LessonsCreated != 2 || res.QuestionsCreated != 3 || res.Skipped != 0 {
		t.Errorf("unexpected reimport result %+v", res)
	}
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/tutorly/quizengine/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS subjects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS units (
    id TEXT PRIMARY KEY,
    subject_id TEXT NOT NULL,
    title TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS lessons (
    id TEXT PRIMARY KEY,
    unit_id TEXT NOT NULL,
    title TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (unit_id) REFERENCES units(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS lesson_progress (
    user_id TEXT NOT NULL,
    lesson_id TEXT NOT NULL,
    completed_at INTEGER NOT NULL,
    PRIMARY KEY (user_id, lesson_id),
    FOREIGN KEY (lesson_id) REFERENCES lessons(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    lesson_id TEXT NOT NULL,
    type TEXT NOT NULL,
    question TEXT NOT NULL,
    options TEXT NOT NULL DEFAULT '[]',
    correct_answer TEXT NOT NULL,
    explanation TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL,
    points INTEGER NOT NULL DEFAULT 1,
    is_dynamic BOOLEAN NOT NULL DEFAULT FALSE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    times_used INTEGER NOT NULL DEFAULT 0,
    success_rate REAL NOT NULL DEFAULT 0,
    last_used_at INTEGER,
    FOREIGN KEY (lesson_id) REFERENCES lessons(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_pick ON questions (lesson_id, is_active, is_dynamic, times_used);

CREATE TABLE IF NOT EXISTS quiz_attempts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    lesson_id TEXT NOT NULL,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    score REAL NOT NULL DEFAULT 0,
    time_spent INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    completed_at INTEGER,
    metadata TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts (user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_attempts_lesson ON quiz_attempts (lesson_id);

CREATE TABLE IF NOT EXISTS quiz_attempt_answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    attempt_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    user_answer TEXT NOT NULL,
    is_correct BOOLEAN NOT NULL,
    time_spent INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    UNIQUE (attempt_id, question_id),
    FOREIGN KEY (attempt_id) REFERENCES quiz_attempts(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One writer at a time; the stats workers write concurrently.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a primary key or unique
// constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Times are stored as unix nanoseconds so ORDER BY is chronological.
func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func fromNullNanos(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromNanos(n.Int64)
	return &t
}

func nullNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toNanos(*t), Valid: true}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// ============================================================================
// Questions
// ============================================================================

const questionColumns = `id, lesson_id, type, question, options, correct_answer, explanation,
    difficulty, points, is_dynamic, is_active, times_used, success_rate, last_used_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (question.Question, error) {
	var q question.Question
	var optionsJSON string
	var lastUsed sql.NullInt64

	err := row.Scan(
		&q.ID, &q.LessonID, &q.Type, &q.Prompt, &optionsJSON, &q.CorrectAnswer, &q.Explanation,
		&q.Difficulty, &q.Points, &q.IsDynamic, &q.IsActive, &q.TimesUsed, &q.SuccessRate, &lastUsed,
	)
	if err != nil {
		return q, err
	}

	if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
		return q, err
	}
	if len(q.Options) == 0 {
		q.Options = nil
	}
	q.LastUsedAt = fromNullNanos(lastUsed)
	return q, nil
}

func (s *SQLiteStore) SaveQuestion(ctx context.Context, q *question.Question) error {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO questions (`+questionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.LessonID, q.Type, q.Prompt, string(optionsJSON), q.CorrectAnswer, q.Explanation,
		q.Difficulty, q.Points, q.IsDynamic, q.IsActive, q.TimesUsed, q.SuccessRate, nullNanos(q.LastUsedAt),
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	q, err := scanQuestion(s.db.QueryRowContext(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLiteStore) ListQuestionsByLesson(ctx context.Context, lessonID string) ([]question.Question, error) {
	return s.queryQuestions(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE lesson_id = ? ORDER BY rowid", lessonID,
	)
}

// FindQuestions returns active static questions matching f, least used first.
func (s *SQLiteStore) FindQuestions(ctx context.Context, f QuestionFilter) ([]question.Question, error) {
	var where []string
	var args []any

	where = append(where, "is_active = TRUE", "is_dynamic = FALSE")

	if len(f.LessonIDs) > 0 {
		where = append(where, "lesson_id IN ("+placeholders(len(f.LessonIDs))+")")
		for _, id := range f.LessonIDs {
			args = append(args, id)
		}
	}
	if f.Difficulty.IsFilter() {
		where = append(where, "difficulty = ?")
		args = append(args, f.Difficulty)
	}
	if len(f.Types) > 0 {
		where = append(where, "type IN ("+placeholders(len(f.Types))+")")
		for _, t := range f.Types {
			args = append(args, t)
		}
	}
	if len(f.ExcludeIDs) > 0 {
		where = append(where, "id NOT IN ("+placeholders(len(f.ExcludeIDs))+")")
		for _, id := range f.ExcludeIDs {
			args = append(args, id)
		}
	}

	query := "SELECT " + questionColumns + " FROM questions WHERE " + strings.Join(where, " AND ") +
		" ORDER BY times_used ASC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	return s.queryQuestions(ctx, query, args...)
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// MarkQuestionUsed increments times_used in place and stamps last_used_at.
func (s *SQLiteStore) MarkQuestionUsed(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE questions SET times_used = times_used + 1, last_used_at = ? WHERE id = ?",
		toNanos(at), id,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) UpdateSuccessRate(ctx context.Context, id string, rate float64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE questions SET success_rate = ? WHERE id = ?", rate, id,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

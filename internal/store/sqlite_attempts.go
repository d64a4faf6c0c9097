package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tutorly/quizengine/internal/domain/attempt"
)

// ============================================================================
// Attempts
// ============================================================================

const attemptColumns = `id, user_id, lesson_id, total_questions, correct_answers, score,
    time_spent, created_at, completed_at, metadata`

func scanAttempt(row rowScanner) (*attempt.QuizAttempt, error) {
	var a attempt.QuizAttempt
	var createdAt int64
	var completedAt sql.NullInt64
	var metadata string

	err := row.Scan(
		&a.ID, &a.UserID, &a.LessonID, &a.TotalQuestions, &a.CorrectAnswers, &a.Score,
		&a.TimeSpent, &createdAt, &completedAt, &metadata,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = fromNanos(createdAt)
	a.CompletedAt = fromNullNanos(completedAt)

	if err := json.Unmarshal([]byte(metadata), &a.Scope); err != nil {
		return nil, fmt.Errorf("attempt %s: decode metadata: %w", a.ID, err)
	}
	return &a, nil
}

func (s *SQLiteStore) SaveAttempt(ctx context.Context, a *attempt.QuizAttempt) error {
	metadata, err := json.Marshal(a.Scope)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (`+attemptColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.LessonID, a.TotalQuestions, a.CorrectAnswers, a.Score,
		a.TimeSpent, toNanos(a.CreatedAt), nullNanos(a.CompletedAt), string(metadata),
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) GetAttempt(ctx context.Context, id string) (*attempt.QuizAttempt, error) {
	a, err := scanAttempt(s.db.QueryRowContext(ctx,
		"SELECT "+attemptColumns+" FROM quiz_attempts WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CompleteAttempt writes the scoring fields. The frozen metadata is never
// rewritten.
func (s *SQLiteStore) CompleteAttempt(ctx context.Context, a *attempt.QuizAttempt) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE quiz_attempts
		SET correct_answers = ?, score = ?, time_spent = ?, completed_at = ?
		WHERE id = ?
	`, a.CorrectAnswers, a.Score, a.TimeSpent, nullNanos(a.CompletedAt), a.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (s *SQLiteStore) ListAttempts(ctx context.Context, f AttemptFilter) ([]*attempt.QuizAttempt, error) {
	query := "SELECT " + attemptColumns + " FROM quiz_attempts WHERE 1 = 1"
	var args []any

	if f.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, f.UserID)
	}
	if f.LessonID != "" {
		query += " AND lesson_id = ?"
		args = append(args, f.LessonID)
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*attempt.QuizAttempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ============================================================================
// Answers
// ============================================================================

// SaveAnswer inserts a write-once answer row. A second answer for the same
// question in the same attempt returns ErrDuplicate.
func (s *SQLiteStore) SaveAnswer(ctx context.Context, a attempt.Answer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quiz_attempt_answers (attempt_id, question_id, user_answer, is_correct, time_spent, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.AttemptID, a.QuestionID, a.UserAnswer, a.IsCorrect, a.TimeSpent, toNanos(a.CreatedAt))
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) ListAnswers(ctx context.Context, attemptID string) ([]attempt.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT attempt_id, question_id, user_answer, is_correct, time_spent, created_at
		FROM quiz_attempt_answers
		WHERE attempt_id = ?
		ORDER BY id
	`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []attempt.Answer
	for rows.Next() {
		var a attempt.Answer
		var createdAt int64
		if err := rows.Scan(&a.AttemptID, &a.QuestionID, &a.UserAnswer, &a.IsCorrect, &a.TimeSpent, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = fromNanos(createdAt)
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// RecentAnsweredQuestionIDs returns the question ids of the user's most
// recent answers across all attempts, newest first.
func (s *SQLiteStore) RecentAnsweredQuestionIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ans.question_id
		FROM quiz_attempt_answers ans
		JOIN quiz_attempts a ON a.id = ans.attempt_id
		WHERE a.user_id = ?
		ORDER BY ans.created_at DESC, ans.id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

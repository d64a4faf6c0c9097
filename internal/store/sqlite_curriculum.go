package store

import (
	"context"
	"database/sql"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
)

// ============================================================================
// Subjects
// ============================================================================

func (s *SQLiteStore) SaveSubject(ctx context.Context, subj *curriculum.Subject) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO subjects (id, name) VALUES (?, ?)", subj.ID, subj.Name,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) GetSubject(ctx context.Context, id string) (*curriculum.Subject, error) {
	var subj curriculum.Subject
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM subjects WHERE id = ?", id,
	).Scan(&subj.ID, &subj.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subj, nil
}

func (s *SQLiteStore) ListSubjects(ctx context.Context) ([]*curriculum.Subject, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM subjects ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*curriculum.Subject
	for rows.Next() {
		var subj curriculum.Subject
		if err := rows.Scan(&subj.ID, &subj.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subj)
	}
	return subjects, rows.Err()
}

// ============================================================================
// Units
// ============================================================================

func (s *SQLiteStore) SaveUnit(ctx context.Context, u *curriculum.Unit) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO units (id, subject_id, title, position) VALUES (?, ?, ?, ?)",
		u.ID, u.SubjectID, u.Title, u.Order,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) GetUnit(ctx context.Context, id string) (*curriculum.Unit, error) {
	var u curriculum.Unit
	err := s.db.QueryRowContext(ctx,
		"SELECT id, subject_id, title, position FROM units WHERE id = ?", id,
	).Scan(&u.ID, &u.SubjectID, &u.Title, &u.Order)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) ListUnits(ctx context.Context, subjectID string) ([]*curriculum.Unit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, subject_id, title, position FROM units WHERE subject_id = ? ORDER BY position, rowid",
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*curriculum.Unit
	for rows.Next() {
		var u curriculum.Unit
		if err := rows.Scan(&u.ID, &u.SubjectID, &u.Title, &u.Order); err != nil {
			return nil, err
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

// ============================================================================
// Lessons
// ============================================================================

func (s *SQLiteStore) SaveLesson(ctx context.Context, l *curriculum.Lesson) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO lessons (id, unit_id, title, summary, position) VALUES (?, ?, ?, ?, ?)",
		l.ID, l.UnitID, l.Title, l.Summary, l.Order,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) GetLesson(ctx context.Context, id string) (*curriculum.Lesson, error) {
	var l curriculum.Lesson
	err := s.db.QueryRowContext(ctx,
		"SELECT id, unit_id, title, summary, position FROM lessons WHERE id = ?", id,
	).Scan(&l.ID, &l.UnitID, &l.Title, &l.Summary, &l.Order)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *SQLiteStore) ListLessonsByUnit(ctx context.Context, unitID string) ([]*curriculum.Lesson, error) {
	return s.queryLessons(ctx,
		"SELECT id, unit_id, title, summary, position FROM lessons WHERE unit_id = ? ORDER BY position, rowid",
		unitID,
	)
}

// ListLessonsBySubject walks subject → units → lessons in curriculum order.
func (s *SQLiteStore) ListLessonsBySubject(ctx context.Context, subjectID string) ([]*curriculum.Lesson, error) {
	return s.queryLessons(ctx, `
		SELECT l.id, l.unit_id, l.title, l.summary, l.position
		FROM lessons l
		JOIN units u ON u.id = l.unit_id
		WHERE u.subject_id = ?
		ORDER BY u.position, u.rowid, l.position, l.rowid
	`, subjectID)
}

func (s *SQLiteStore) queryLessons(ctx context.Context, query string, args ...any) ([]*curriculum.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*curriculum.Lesson
	for rows.Next() {
		var l curriculum.Lesson
		if err := rows.Scan(&l.ID, &l.UnitID, &l.Title, &l.Summary, &l.Order); err != nil {
			return nil, err
		}
		lessons = append(lessons, &l)
	}
	return lessons, rows.Err()
}

// ============================================================================
// Progress
// ============================================================================

// MarkLessonCompleted records completion; completing again moves the timestamp.
func (s *SQLiteStore) MarkLessonCompleted(ctx context.Context, p curriculum.Progress) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lesson_progress (user_id, lesson_id, completed_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET completed_at = excluded.completed_at
	`, p.UserID, p.LessonID, toNanos(p.CompletedAt))
	return err
}

// RecentCompletedLessons returns the user's completed lessons, most recent
// first. A non-empty subjectID restricts them to that subject.
func (s *SQLiteStore) RecentCompletedLessons(ctx context.Context, userID, subjectID string, limit int) ([]*curriculum.Lesson, error) {
	query := `
		SELECT l.id, l.unit_id, l.title, l.summary, l.position
		FROM lesson_progress p
		JOIN lessons l ON l.id = p.lesson_id
		JOIN units u ON u.id = l.unit_id
		WHERE p.user_id = ?`
	args := []any{userID}

	if subjectID != "" {
		query += " AND u.subject_id = ?"
		args = append(args, subjectID)
	}
	query += " ORDER BY p.completed_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.queryLessons(ctx, query, args...)
}

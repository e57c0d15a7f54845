package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Repository persists attendance data in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListByStudent returns a student's records joined through their lecture to
// subject metadata. Rows whose lecture or subject cannot be resolved come
// back with a nil Subject; the aggregator keeps them in the overall totals.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.lecture_id, a.student_id, a.is_present, a.marked_at, a.faculty_id,
		       l.subject_id, l.subject_name, l.subject_code
		FROM attendance_records a
		LEFT JOIN lecture_slots l ON l.id = a.lecture_id
		WHERE a.student_id = $1
		ORDER BY a.marked_at
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec                        Record
			subjID, subjName, subjCode sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.LectureID, &rec.StudentID, &rec.Present, &rec.MarkedAt, &rec.FacultyID,
			&subjID, &subjName, &subjCode,
		); err != nil {
			return nil, err
		}
		if subjID.Valid && subjID.String != "" {
			rec.Subject = &SubjectRef{ID: subjID.String, Name: subjName.String, Code: subjCode.String}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DayBounds returns the closed interval covering one calendar date,
// [00:00:00.000, 23:59:59.999], in the date's own location.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// ExistsOn reports whether any record exists for the lecture within the
// given calendar date. No rows means false, not an error.
func (r *Repository) ExistsOn(ctx context.Context, lectureID string, date time.Time) (bool, error) {
	start, end := DayBounds(date)
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE lecture_id = $1 AND marked_at BETWEEN $2 AND $3
		)
	`, lectureID, start, end).Scan(&exists)
	return exists, err
}

// UpsertBatch writes submissions, keyed by (lecture, student, calendar day).
// Re-submitting the same mark overwrites rather than duplicating, so the
// stored data holds at most one row per tuple regardless of how many times a
// faculty member saves.
func (r *Repository) UpsertBatch(ctx context.Context, subs []Submission) error {
	if len(subs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO attendance_records (id, lecture_id, student_id, is_present, marked_at, marked_on, faculty_id)
		VALUES ($1, $2, $3, $4, $5, $5::date, $6)
		ON CONFLICT (lecture_id, student_id, marked_on) DO UPDATE SET
			is_present = EXCLUDED.is_present,
			marked_at  = EXCLUDED.marked_at,
			faculty_id = EXCLUDED.faculty_id
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range subs {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), s.LectureID, s.StudentID, s.Present, s.MarkedAt, s.FacultyID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

package timetable

import (
	"context"
	"database/sql"
)

// Repository reads lecture definitions from Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const lectureColumns = `
	id, day, kind, subject_code, subject_name, faculty_id,
	department_id, division, batch, semester, from_time, to_time, location`

// ListByFaculty returns every scheduled session for a faculty member, in
// stored order. Callers filter per day via the resolver.
func (r *Repository) ListByFaculty(ctx context.Context, facultyID string) ([]LectureSlot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+lectureColumns+`
		FROM lecture_slots
		WHERE faculty_id = $1
		ORDER BY created_at
	`, facultyID)
	if err != nil {
		return nil, err
	}
	return scanLectures(rows)
}

// ListByDay returns every scheduled session on the named weekday, in stored
// order.
func (r *Repository) ListByDay(ctx context.Context, day string) ([]LectureSlot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+lectureColumns+`
		FROM lecture_slots
		WHERE LOWER(day) = LOWER($1)
		ORDER BY created_at
	`, day)
	if err != nil {
		return nil, err
	}
	return scanLectures(rows)
}

// scanLectures is the one place loose upstream rows become normalized
// LectureSlot values. Optional columns collapse to "" here and nowhere else.
func scanLectures(rows *sql.Rows) ([]LectureSlot, error) {
	defer rows.Close()
	var out []LectureSlot
	for rows.Next() {
		var (
			l                              LectureSlot
			subjCode, subjName, dept       sql.NullString
			division, batch, sem, location sql.NullString
		)
		if err := rows.Scan(
			&l.ID, &l.Day, &l.Type, &subjCode, &subjName, &l.FacultyID,
			&dept, &division, &batch, &sem, &l.From, &l.To, &location,
		); err != nil {
			return nil, err
		}
		l.SubjectCode = subjCode.String
		l.SubjectName = subjName.String
		l.DepartmentID = dept.String
		l.Division = division.String
		l.Batch = batch.String
		l.Semester = sem.String
		l.Location = location.String
		out = append(out, l)
	}
	return out, rows.Err()
}

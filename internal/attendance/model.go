package attendance

import "time"

// Record is one presence mark for one student in one lecture on one date.
// Subject is populated when the row could be joined through its lecture to
// subject metadata; it stays nil for orphaned rows, which still count toward
// overall totals.
type Record struct {
	ID        string
	LectureID string
	StudentID string
	Present   bool
	MarkedAt  time.Time
	FacultyID string
	Subject   *SubjectRef
}

// SubjectRef is the joined subject metadata for a record.
type SubjectRef struct {
	ID   string
	Name string
	Code string
}

// Summary is the derived overall aggregate for one student. It is computed
// on request and never stored.
type Summary struct {
	TotalClasses   int     `json:"total_classes"`
	PresentClasses int     `json:"present_classes"`
	AbsentClasses  int     `json:"absent_classes"`
	Percentage     float64 `json:"attendance_percentage"`
}

// SubjectSummary is the per-subject breakdown row.
type SubjectSummary struct {
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	Total       int     `json:"total_classes"`
	Present     int     `json:"present_classes"`
	Absent      int     `json:"absent_classes"`
	Percentage  float64 `json:"attendance_percentage"`
}

// Submission is one incoming presence mark headed for persistence.
type Submission struct {
	LectureID string    `json:"lecture_id"`
	StudentID string    `json:"student_id"`
	Present   bool      `json:"is_present"`
	MarkedAt  time.Time `json:"date"`
	FacultyID string    `json:"faculty_id"`
}

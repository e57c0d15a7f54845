package timetable

// Lecture types as stored upstream. Anything else renders like a lecture.
const (
	TypeLecture = "Lecture"
	TypeLab     = "Lab"
)

// LectureSlot is the normalized scheduled-session record. Upstream rows are
// loose about field names and presence; the repository adapter resolves all
// of that once so nothing downstream re-checks optional fields.
type LectureSlot struct {
	ID           string
	Day          string
	Type         string
	SubjectCode  string
	SubjectName  string
	FacultyID    string
	DepartmentID string
	Division     string
	Batch        string
	Semester     string
	From         string // stored wall-clock value, e.g. "03:30:00+00"
	To           string
	Location     string
}

// IsLab reports whether the session occupies two grid rows.
func (l LectureSlot) IsLab() bool {
	return l.Type == TypeLab
}

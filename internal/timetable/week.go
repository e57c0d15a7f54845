package timetable

// CellEntry is one section rendered inside a cell. Times are pre-formatted
// for display; an unparseable stored time passes through unchanged.
type CellEntry struct {
	LectureID   string `json:"lecture_id"`
	Type        string `json:"type"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Division    string `json:"division"`
	Batch       string `json:"batch,omitempty"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to"`
	SpansTwo    bool   `json:"spans_two,omitempty"`
}

// Cell is one grid cell in a rendered day.
type Cell struct {
	Row          int         `json:"row"`
	Label        string      `json:"label,omitempty"`
	IsBreak      bool        `json:"is_break,omitempty"`
	BreakLabel   string      `json:"break_label,omitempty"`
	Continuation bool        `json:"continuation,omitempty"`
	Entries      []CellEntry `json:"entries,omitempty"`
}

// DaySchedule is one rendered teaching day.
type DaySchedule struct {
	Day   string `json:"day"`
	Cells []Cell `json:"cells"`
}

// Week lays out the full Monday–Saturday grid for the given lecture list.
// A cell is exactly one of: a break, a lab continuation (content lives in the
// previous cell), or up to two sections.
func (r *Resolver) Week(lectures []LectureSlot) []DaySchedule {
	week := make([]DaySchedule, 0, len(TeachingDays))
	for _, day := range TeachingDays {
		cells := make([]Cell, 0, len(r.grid))
		for _, row := range r.grid {
			cell := Cell{Row: row.Index, Label: row.Label}
			switch {
			case row.IsBreak:
				cell.IsBreak = true
				cell.BreakLabel = row.BreakLabel
			case r.IsLabContinuation(day, row.Index, lectures):
				cell.Continuation = true
			default:
				for _, l := range r.CellLectures(day, row.Index, lectures) {
					cell.Entries = append(cell.Entries, CellEntry{
						LectureID:   l.ID,
						Type:        l.Type,
						SubjectCode: l.SubjectCode,
						SubjectName: l.SubjectName,
						Division:    l.Division,
						Batch:       l.Batch,
						Location:    l.Location,
						From:        Display12(l.From),
						To:          Display12(l.To),
						SpansTwo:    l.IsLab(),
					})
				}
			}
			cells = append(cells, cell)
		}
		week = append(week, DaySchedule{Day: day, Cells: cells})
	}
	return week
}

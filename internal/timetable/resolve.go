package timetable

import "strings"

// maxPerCell caps how many sections render in one cell. More than two
// sections meeting in the same window is a data-quality problem upstream;
// extras are dropped rather than rejected.
const maxPerCell = 2

// rowForClock maps a stored wall-clock value onto a grid row index.
//
// Stored times do not line up with the display windows: upstream persists
// local wall-clock values shifted by a fixed offset (9:00 renders for rows
// stored as 03:30+00, and so on), so this is a lookup over the hours actually
// observed in the data, not a range-containment test. Hour 5 is the one
// ambiguous hour — a two-row lab ending at 5:30 and the post-break window
// starting at 5:45 share it — and is split on the minute. Hours never seen in
// the data fall through to the nearest later teaching row so an odd-but-valid
// time still lands somewhere visible.
func rowForClock(c Clock) int {
	switch c.Hour {
	case 3:
		return 1
	case 4:
		return 2
	case 5:
		if c.Minute >= 45 {
			return 4
		}
		return 2
	case 6:
		return 5
	case 8:
		return 7
	case 9:
		return 8
	}
	switch {
	case c.Hour < 3:
		return 1
	case c.Hour == 7:
		return 5
	default: // >= 10
		return 8
	}
}

// Resolver places lectures into grid cells and detects lab continuations.
// It holds no per-call state; one resolver can serve every day of the week.
type Resolver struct {
	grid Grid
}

// NewResolver builds a resolver over the given grid.
func NewResolver(grid Grid) *Resolver {
	return &Resolver{grid: grid}
}

// Grid returns the grid the resolver was built with.
func (r *Resolver) Grid() Grid {
	return r.grid
}

// CellLectures returns the lectures belonging to (day, row), at most two, in
// input order. Break rows and out-of-range rows hold no lectures. Lectures
// whose start time has no recognizable HH:MM cannot be placed and are left
// out.
func (r *Resolver) CellLectures(day string, rowIndex int, lectures []LectureSlot) []LectureSlot {
	row, ok := r.grid.RowAt(rowIndex)
	if !ok || row.IsBreak {
		return nil
	}
	var out []LectureSlot
	for _, l := range lectures {
		if !strings.EqualFold(l.Day, day) {
			continue
		}
		start, ok := ParseClock(l.From)
		if !ok {
			continue
		}
		if rowForClock(start) != rowIndex {
			continue
		}
		out = append(out, l)
		if len(out) == maxPerCell {
			break
		}
	}
	return out
}

// IsLabContinuation reports whether (day, row) is covered by a lab that
// started in the immediately preceding row. Such a cell is skipped during
// layout: the lab rendered at its start row with double height. Labs never
// span a break, so a break immediately before means no continuation.
//
// The lab's end time goes through the same rowForClock lookup as start
// times; the resolver and this check agreeing on row identity is what keeps
// a lab from rendering twice or not at all.
func (r *Resolver) IsLabContinuation(day string, rowIndex int, lectures []LectureSlot) bool {
	if rowIndex <= 1 {
		return false
	}
	prev, ok := r.grid.RowAt(rowIndex - 1)
	if !ok || prev.IsBreak {
		return false
	}
	for _, l := range r.CellLectures(day, prev.Index, lectures) {
		if !l.IsLab() {
			continue
		}
		end, ok := ParseClock(l.To)
		if !ok {
			continue
		}
		if rowForClock(end) == rowIndex {
			return true
		}
	}
	return false
}

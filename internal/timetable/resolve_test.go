package timetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lec(id, day, from, to string) LectureSlot {
	return LectureSlot{ID: id, Day: day, Type: TypeLecture, From: from, To: to}
}

func lab(id, day, from, to string) LectureSlot {
	l := lec(id, day, from, to)
	l.Type = TypeLab
	return l
}

// Stored start times as they actually appear upstream: local wall-clock
// shifted onto a bogus UTC offset, one observed value per teaching row.
var storedStarts = map[int]string{
	1: "03:30:00+00",
	2: "04:30:00+00",
	4: "05:45:00+00",
	5: "06:45:00+00",
	7: "08:30:00+00",
	8: "09:30:00+00",
}

func TestCellLecturesPlacesObservedStartTimes(t *testing.T) {
	r := NewResolver(DefaultGrid())

	var all []LectureSlot
	for row, from := range storedStarts {
		all = append(all, lec(fmt.Sprintf("l%d", row), "Monday", from, ""))
	}

	for row, from := range storedStarts {
		got := r.CellLectures("Monday", row, all)
		require.Len(t, got, 1, "row %d", row)
		assert.Equal(t, from, got[0].From)
	}
}

func TestCellLecturesDayMatchIsCaseInsensitive(t *testing.T) {
	r := NewResolver(DefaultGrid())
	all := []LectureSlot{lec("a", "MONDAY", "03:30:00+00", "")}

	assert.Len(t, r.CellLectures("monday", 1, all), 1)
	assert.Empty(t, r.CellLectures("Tuesday", 1, all))
}

func TestCellLecturesCapAndOrder(t *testing.T) {
	r := NewResolver(DefaultGrid())
	all := []LectureSlot{
		lec("first", "Monday", "03:30:00+00", ""),
		lec("second", "Monday", "03:30:00+00", ""),
		lec("third", "Monday", "03:30:00+00", ""),
	}

	got := r.CellLectures("Monday", 1, all)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestCellLecturesIdempotent(t *testing.T) {
	r := NewResolver(DefaultGrid())
	all := []LectureSlot{
		lec("a", "Friday", "05:45:00+00", ""),
		lec("b", "Friday", "05:45:00+00", ""),
	}

	first := r.CellLectures("Friday", 4, all)
	second := r.CellLectures("Friday", 4, all)
	assert.Equal(t, first, second)
}

func TestCellLecturesSkipsBreakRowsAndBadTimes(t *testing.T) {
	r := NewResolver(DefaultGrid())
	all := []LectureSlot{
		lec("ok", "Monday", "03:30:00+00", ""),
		lec("bad", "Monday", "soon", ""),
	}

	assert.Empty(t, r.CellLectures("Monday", 3, all), "break row holds no lectures")
	assert.Empty(t, r.CellLectures("Monday", 6, all))
	assert.Empty(t, r.CellLectures("Monday", 0, all))

	got := r.CellLectures("Monday", 1, all)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestUnseenHoursFallToNearestLaterRow(t *testing.T) {
	r := NewResolver(DefaultGrid())
	tests := []struct {
		from string
		row  int
	}{
		{"00:10:00+00", 1},
		{"02:00:00+00", 1},
		{"07:00:00+00", 5},
		{"10:15:00+00", 8},
		{"13:00:00+00", 8},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			all := []LectureSlot{lec("x", "Wednesday", tt.from, "")}
			got := r.CellLectures("Wednesday", tt.row, all)
			require.Len(t, got, 1, "time %s should land in row %d", tt.from, tt.row)
		})
	}
}

func TestLabSpanConsistency(t *testing.T) {
	// For every lab-capable row pair (start, continuation) the resolver must
	// place the lab at its start row and the detector must claim the next
	// row, off the same lecture list.
	tests := []struct {
		name     string
		from, to string
		start    int
		cont     int
	}{
		{name: "rows 1-2", from: "03:30:00+00", to: "05:30:00+00", start: 1, cont: 2},
		{name: "rows 4-5", from: "05:45:00+00", to: "07:45:00+00", start: 4, cont: 5},
		{name: "rows 7-8", from: "08:30:00+00", to: "10:30:00+00", start: 7, cont: 8},
	}

	r := NewResolver(DefaultGrid())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := []LectureSlot{lab("lab1", "Thursday", tt.from, tt.to)}

			atStart := r.CellLectures("Thursday", tt.start, all)
			require.Len(t, atStart, 1)
			assert.True(t, atStart[0].IsLab())

			assert.True(t, r.IsLabContinuation("Thursday", tt.cont, all))
			assert.Empty(t, r.CellLectures("Thursday", tt.cont, all),
				"continuation cell must not re-resolve the lab")
		})
	}
}

func TestLabContinuationNegativeCases(t *testing.T) {
	r := NewResolver(DefaultGrid())

	t.Run("plain lecture does not continue", func(t *testing.T) {
		all := []LectureSlot{lec("l", "Monday", "03:30:00+00", "04:30:00+00")}
		assert.False(t, r.IsLabContinuation("Monday", 2, all))
	})

	t.Run("first row is never a continuation", func(t *testing.T) {
		all := []LectureSlot{lab("lab1", "Monday", "03:30:00+00", "05:30:00+00")}
		assert.False(t, r.IsLabContinuation("Monday", 1, all))
	})

	t.Run("labs do not span a break", func(t *testing.T) {
		// Row 4 follows the short break at row 3; nothing in row 2 can claim
		// it even with a lab-shaped end time.
		all := []LectureSlot{lab("lab1", "Monday", "04:30:00+00", "05:45:00+00")}
		assert.False(t, r.IsLabContinuation("Monday", 4, all))
	})

	t.Run("wrong day", func(t *testing.T) {
		all := []LectureSlot{lab("lab1", "Monday", "05:45:00+00", "07:45:00+00")}
		assert.False(t, r.IsLabContinuation("Tuesday", 5, all))
	})
}

func TestWeekLayout(t *testing.T) {
	r := NewResolver(DefaultGrid())
	all := []LectureSlot{
		{ID: "lab1", Day: "Monday", Type: TypeLab, SubjectCode: "CS301", From: "05:45:00+00", To: "07:45:00+00"},
		{ID: "lec1", Day: "Tuesday", Type: TypeLecture, SubjectCode: "MA201", From: "03:30:00+00", To: "04:30:00+00"},
		{ID: "odd", Day: "Tuesday", Type: TypeLecture, SubjectCode: "PH101", From: "sometime", To: "later"},
	}

	week := r.Week(all)
	require.Len(t, week, 6)

	monday := week[0]
	require.Equal(t, "Monday", monday.Day)
	require.Len(t, monday.Cells, 8)

	assert.True(t, monday.Cells[2].IsBreak)
	assert.Equal(t, "Short Break", monday.Cells[2].BreakLabel)
	assert.True(t, monday.Cells[5].IsBreak)
	assert.Equal(t, "Lunch Break", monday.Cells[5].BreakLabel)

	labCell := monday.Cells[3]
	require.Len(t, labCell.Entries, 1)
	assert.True(t, labCell.Entries[0].SpansTwo)
	assert.Equal(t, "Lab", labCell.Entries[0].Type)
	// Display shows the stored wall-clock value as written, 12-hour form.
	assert.Equal(t, "5:45 AM", labCell.Entries[0].From)
	assert.Equal(t, "7:45 AM", labCell.Entries[0].To)
	assert.True(t, monday.Cells[4].Continuation)
	assert.Empty(t, monday.Cells[4].Entries)

	tuesday := week[1]
	require.Len(t, tuesday.Cells[0].Entries, 1)
	assert.Equal(t, "3:30 AM", tuesday.Cells[0].Entries[0].From)

	// Unparseable times keep the lecture out of every cell but would render
	// verbatim if it were placed; no cell on Tuesday carries "odd".
	for _, cell := range tuesday.Cells {
		for _, e := range cell.Entries {
			assert.NotEqual(t, "odd", e.LectureID)
		}
	}
}

package timetable

// Row is one fixed window in the daily grid: either a teaching window with a
// display range, or a break row with a label.
type Row struct {
	Index      int // 1-based position in the grid
	Label      string
	IsBreak    bool
	BreakLabel string
}

// Grid is the ordered set of daily rows. The same grid applies to every
// teaching day; it is passed in rather than read from a package global so an
// institution with different period lengths can supply its own.
type Grid []Row

// TeachingDays is the weekday set iterated when rendering a week.
var TeachingDays = [6]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DefaultGrid returns the stock eight-row day: six one-hour teaching windows
// with a short break after the second and lunch after the fourth.
func DefaultGrid() Grid {
	return Grid{
		{Index: 1, Label: "9:00 AM - 10:00 AM"},
		{Index: 2, Label: "10:00 AM - 11:00 AM"},
		{Index: 3, IsBreak: true, BreakLabel: "Short Break"},
		{Index: 4, Label: "11:15 AM - 12:15 PM"},
		{Index: 5, Label: "12:15 PM - 1:15 PM"},
		{Index: 6, IsBreak: true, BreakLabel: "Lunch Break"},
		{Index: 7, Label: "2:00 PM - 3:00 PM"},
		{Index: 8, Label: "3:00 PM - 4:00 PM"},
	}
}

// RowAt returns the row at the given 1-based index.
func (g Grid) RowAt(index int) (Row, bool) {
	if index < 1 || index > len(g) {
		return Row{}, false
	}
	return g[index-1], true
}

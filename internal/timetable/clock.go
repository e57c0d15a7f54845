package timetable

import (
	"fmt"
	"regexp"
)

// Clock is a wall-clock time of day taken verbatim from a stored value.
// The stored offset suffix is ignored on purpose: upstream writes local
// wall-clock values with a bogus offset, and that written value is what
// the rest of the system keys on.
type Clock struct {
	Hour   int
	Minute int
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// ParseClock extracts the first HH:MM pair from a stored time value such as
// "03:30:00+00" or a full timestamp. The second return is false when no
// in-range HH:MM pair is present; callers then render the raw string as-is.
func ParseClock(raw string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return Clock{}, false
	}
	h := int(m[1][0]-'0')
	if len(m[1]) == 2 {
		h = h*10 + int(m[1][1]-'0')
	}
	min := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	if h > 23 || min > 59 {
		return Clock{}, false
	}
	return Clock{Hour: h, Minute: min}, true
}

// Format12 renders a clock in "H:MM AM/PM" form.
func (c Clock) Format12() string {
	period := "AM"
	h := c.Hour
	switch {
	case h == 0:
		h = 12
	case h == 12:
		period = "PM"
	case h > 12:
		h -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute, period)
}

// Display12 converts a stored time value to 12-hour form, falling back to
// the raw string when it cannot be parsed.
func Display12(raw string) string {
	c, ok := ParseClock(raw)
	if !ok {
		return raw
	}
	return c.Format12()
}

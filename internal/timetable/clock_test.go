package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Clock
		ok   bool
	}{
		{name: "offset suffix", raw: "03:30:00+00", want: Clock{3, 30}, ok: true},
		{name: "positive half offset", raw: "14:15:00+05:30", want: Clock{14, 15}, ok: true},
		{name: "full timestamp", raw: "2024-01-15T09:30:00+00:00", want: Clock{9, 30}, ok: true},
		{name: "bare", raw: "7:45", want: Clock{7, 45}, ok: true},
		{name: "midnight", raw: "00:00:00+00", want: Clock{0, 0}, ok: true},
		{name: "no time at all", raw: "lunch"},
		{name: "empty", raw: ""},
		{name: "hour out of range", raw: "27:10:00+00"},
		{name: "minute out of range", raw: "10:75:00+00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClock(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormat12(t *testing.T) {
	tests := []struct {
		c    Clock
		want string
	}{
		{Clock{0, 5}, "12:05 AM"},
		{Clock{1, 0}, "1:00 AM"},
		{Clock{11, 59}, "11:59 AM"},
		{Clock{12, 0}, "12:00 PM"},
		{Clock{13, 30}, "1:30 PM"},
		{Clock{23, 45}, "11:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Format12())
		})
	}
}

func TestDisplay12FallsBackToRawString(t *testing.T) {
	assert.Equal(t, "9:30 AM", Display12("09:30:00+00"))
	assert.Equal(t, "whenever", Display12("whenever"))
	assert.Equal(t, "", Display12(""))
}

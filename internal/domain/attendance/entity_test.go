package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dayAt(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestStatusFor(t *testing.T) {
	shiftStart := dayAt(8, 0)

	cases := []struct {
		name    string
		clockIn time.Time
		grace   time.Duration
		want    string
	}{
		{"before start", dayAt(7, 45), 0, StatusOnTime},
		{"exactly at start", dayAt(8, 0), 0, StatusOnTime},
		{"one minute late", dayAt(8, 1), 0, StatusLate},
		{"quarter past", dayAt(8, 15), 0, StatusLate},
		{"inside grace", dayAt(8, 10), 15 * time.Minute, StatusOnTime},
		{"at grace boundary", dayAt(8, 15), 15 * time.Minute, StatusOnTime},
		{"past grace", dayAt(8, 16), 15 * time.Minute, StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, StatusFor(c.clockIn, shiftStart, c.grace))
		})
	}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateNotClockedIn, StateOf(nil))

	in := dayAt(8, 0)
	record := &Attendance{ClockIn: in}
	assert.Equal(t, StateClockedIn, StateOf(record))

	out := dayAt(17, 0)
	record.ClockOut = &out
	assert.Equal(t, StateClockedOut, StateOf(record))
}

func TestWorkedMinutes(t *testing.T) {
	in := dayAt(8, 15)
	out := dayAt(17, 0)
	record := Attendance{ClockIn: in, ClockOut: &out}

	assert.True(t, record.IsComplete())
	assert.Equal(t, 525, record.WorkedMinutes())

	open := Attendance{ClockIn: in}
	assert.False(t, open.IsComplete())
	assert.Equal(t, 0, open.WorkedMinutes())
}

func TestClockOutAfterClockIn(t *testing.T) {
	in := dayAt(8, 0)
	out := dayAt(17, 0)
	record := Attendance{ClockIn: in, ClockOut: &out}
	assert.True(t, record.ClockOut.After(record.ClockIn))
}

package attendance

import (
	"time"
)

// Attendance status values. Kept in Indonesian; the frontend renders them
// verbatim.
const (
	StatusOnTime = "Tepat Waktu"
	StatusLate   = "Terlambat"
)

// Attendance is one user's record for one calendar day. At most one row
// exists per (user_id, work_date); clock_out is set at most once.
type Attendance struct {
	ID        string
	UserID    string
	WorkDate  time.Time
	ClockIn   time.Time
	ClockOut  *time.Time
	Status    string
	SelfieURL *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	UserName *string
}

// IsComplete reports whether the day has both a clock-in and a clock-out.
// Only complete records count toward worked-time totals.
func (a *Attendance) IsComplete() bool {
	return a.ClockOut != nil
}

// WorkedMinutes returns the clock-in to clock-out span in whole minutes,
// zero for incomplete records.
func (a *Attendance) WorkedMinutes() int {
	if a.ClockOut == nil {
		return 0
	}
	return int(a.ClockOut.Sub(a.ClockIn).Minutes())
}

// StatusFor derives the attendance status from the clock-in moment and the
// applicable shift start. Late means strictly after start plus grace.
func StatusFor(clockIn time.Time, shiftStart time.Time, grace time.Duration) string {
	if clockIn.After(shiftStart.Add(grace)) {
		return StatusLate
	}
	return StatusOnTime
}

// DayState is the per-day state machine position, rederived from storage on
// every read rather than cached.
type DayState string

const (
	StateNotClockedIn DayState = "not_clocked_in"
	StateClockedIn    DayState = "clocked_in"
	StateClockedOut   DayState = "clocked_out"
)

// StateOf maps today's record (or its absence) to the day state.
func StateOf(record *Attendance) DayState {
	switch {
	case record == nil:
		return StateNotClockedIn
	case record.ClockOut != nil:
		return StateClockedOut
	default:
		return StateClockedIn
	}
}

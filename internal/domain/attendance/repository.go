package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts the record for (user_id, work_date). The insert is
	// conditional: if a record for the day already exists the call fails
	// with ErrAlreadyClockedIn instead of overwriting, so two devices
	// racing to clock in cannot silently last-write-win.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByUserAndDate returns the day's record, nil when absent.
	GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*Attendance, error)

	// SetClockOut stamps clock_out on the day's record only if it is still
	// unset. Returns ErrAlreadyClockedOut when already stamped and
	// ErrNotClockedIn when no record exists.
	SetClockOut(ctx context.Context, userID string, workDate time.Time, clockOut time.Time) (Attendance, error)

	// ListByUser returns the user's records ordered by clock_in descending.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListByUserBetween returns the user's records with clock_in in
	// [from, to), ascending. One call per roster member per report.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	// DeleteByUserAndDate removes the day's record (administrative reset).
	DeleteByUserAndDate(ctx context.Context, userID string, workDate time.Time) error

	// ListDanglingBefore returns records clocked in before the cutoff that
	// were never clocked out.
	ListDanglingBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}

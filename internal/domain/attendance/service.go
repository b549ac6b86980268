package attendance

import (
	"context"
)

// AttendanceService defines business logic for the per-day attendance state
// machine.
type AttendanceService interface {
	// ClockIn creates today's record with the uploaded selfie; status is
	// derived against the configured shift start plus grace window.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut stamps clock-out on today's record. Rejected once stamped.
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// Today rederives the day state from storage.
	Today(ctx context.Context, userID string) (TodayResponse, error)

	// History returns the user's records, newest clock-in first.
	History(ctx context.Context, userID string, limit int) ([]AttendanceResponse, error)

	// ResetToday deletes the target user's record for today, returning them
	// to not_clocked_in. SuperAdmin only; destructive.
	ResetToday(ctx context.Context, targetUserID string) error
}

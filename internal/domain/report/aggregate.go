package report

import (
	"fmt"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
)

// StandardWorkDayMinutes is the baseline above which worked time counts as
// overtime.
const StandardWorkDayMinutes = 480

// Summarize reduces one user's month of records. Records without a
// clock-out are excluded from every total; a present day requires both
// timestamps. Overtime is clamped at zero per record before summing.
func Summarize(records []attendance.Attendance) (daysPresent, daysLate, workedMinutes, overtimeMinutes int) {
	for _, rec := range records {
		if !rec.IsComplete() {
			continue
		}
		daysPresent++
		if rec.Status == attendance.StatusLate {
			daysLate++
		}
		worked := rec.WorkedMinutes()
		workedMinutes += worked
		if worked > StandardWorkDayMinutes {
			overtimeMinutes += worked - StandardWorkDayMinutes
		}
	}
	return daysPresent, daysLate, workedMinutes, overtimeMinutes
}

// FormatMinutes renders a minute total as "{hours}h {minutes}m" with
// zero-value components omitted, and "0m" for exactly zero.
func FormatMinutes(total int) string {
	if total == 0 {
		return "0m"
	}
	hours := total / 60
	minutes := total % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

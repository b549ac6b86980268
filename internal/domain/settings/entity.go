package settings

import (
	"fmt"
	"time"
)

// ShiftWindow is a daily time window in "HH:MM" 24-hour local time.
type ShiftWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShiftSettings is the process-wide shift configuration singleton.
// GraceMinutes is the explicit tolerance added to a shift's start before a
// clock-in counts as late.
type ShiftSettings struct {
	Morning      ShiftWindow `json:"morning"`
	Afternoon    ShiftWindow `json:"afternoon"`
	GraceMinutes int         `json:"grace_minutes"`
	UpdatedAt    time.Time   `json:"-"`
}

// DefaultShiftSettings mirrors the seeded configuration.
func DefaultShiftSettings() ShiftSettings {
	return ShiftSettings{
		Morning:   ShiftWindow{Start: "08:00", End: "16:00"},
		Afternoon: ShiftWindow{Start: "16:00", End: "20:00"},
	}
}

// ApplicableStart resolves which shift applies at the given moment and
// returns that shift's start as a concrete time on the same day: the
// morning shift until the afternoon shift begins, the afternoon shift
// after.
func (s ShiftSettings) ApplicableStart(now time.Time) (time.Time, error) {
	morningStart, err := atTimeOfDay(now, s.Morning.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid morning shift start: %w", err)
	}
	afternoonStart, err := atTimeOfDay(now, s.Afternoon.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid afternoon shift start: %w", err)
	}

	if now.Before(afternoonStart) {
		return morningStart, nil
	}
	return afternoonStart, nil
}

// Grace returns the grace window as a duration.
func (s ShiftSettings) Grace() time.Duration {
	return time.Duration(s.GraceMinutes) * time.Minute
}

func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		day.Location(),
	), nil
}

// CompanySettings is the company configuration singleton. Roles is the
// configurable team list; entries are unique.
type CompanySettings struct {
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultCompanySettings mirrors the seeded configuration.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:  "infinithree",
		Roles: []string{"Host", "Treatment", "Admin"},
	}
}

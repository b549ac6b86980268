package report

import (
	"fmt"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyReportRequest struct {
	Date string `json:"date"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodYear  int              `json:"period_year"`
	PeriodMonth int              `json:"period_month"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	GeneratedAt string           `json:"generated_at"`
	Rows        []MonthlySummary `json:"rows"`
}

// MonthlySummary is one roster member's reduced month.
type MonthlySummary struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	DaysPresent     int    `json:"days_present"`
	DaysLate        int    `json:"days_late"`
	WorkedMinutes   int    `json:"worked_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	Worked          string `json:"worked"`
	Overtime        string `json:"overtime"`
}

type DailyReport struct {
	Date        string     `json:"date"`
	GeneratedAt string     `json:"generated_at"`
	Rows        []DailyRow `json:"rows"`
}

type DailyRow struct {
	Name         string `json:"name"`
	ClockInTime  string `json:"clock_in_time"`
	ClockOutTime string `json:"clock_out_time"`
	Status       string `json:"status"`
}

package report

import (
	"context"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/report"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the per-roster-member fan-out so a large
// roster cannot drain the connection pool.
const maxConcurrentFetches = 8

type ReportServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(
	userRepository user.UserRepository,
	attendanceRepository attendance.AttendanceRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		userRepo:       userRepository,
		attendanceRepo: attendanceRepository,
		now:            time.Now,
	}
}

// Monthly implements report.ReportService. One attendance query per roster
// member runs concurrently; results land in a slice indexed by roster
// position so the merged report keeps the roster's name order.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	now := s.now()
	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	roster, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	rows := make([]report.MonthlySummary, len(roster))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, staff := range roster {
		i, staff := i, staff
		g.Go(func() error {
			records, err := s.attendanceRepo.ListByUserBetween(gCtx, staff.ID, from, to)
			if err != nil {
				return err
			}

			present, late, worked, overtime := report.Summarize(records)
			rows[i] = report.MonthlySummary{
				UserID:          staff.ID,
				Name:            staff.Name,
				DaysPresent:     present,
				DaysLate:        late,
				WorkedMinutes:   worked,
				OvertimeMinutes: overtime,
				Worked:          report.FormatMinutes(worked),
				Overtime:        report.FormatMinutes(overtime),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, err
	}

	return report.MonthlyReport{
		PeriodYear:  req.Year,
		PeriodMonth: req.Month,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: now.Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// Daily implements report.ReportService. Only roster members with a record
// on the requested date get a row; a missing clock-out renders as "-".
func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyReportRequest) (report.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReport{}, err
	}

	now := s.now()
	day, _ := time.ParseInLocation("2006-01-02", req.Date, now.Location())
	next := day.AddDate(0, 0, 1)

	roster, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		return report.DailyReport{}, err
	}

	perMember := make([][]attendance.Attendance, len(roster))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, staff := range roster {
		i, staff := i, staff
		g.Go(func() error {
			records, err := s.attendanceRepo.ListByUserBetween(gCtx, staff.ID, day, next)
			if err != nil {
				return err
			}
			perMember[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.DailyReport{}, err
	}

	rows := make([]report.DailyRow, 0, len(roster))
	for i, staff := range roster {
		for _, record := range perMember[i] {
			clockOut := "-"
			if record.ClockOut != nil {
				clockOut = record.ClockOut.Format("15:04:05")
			}
			rows = append(rows, report.DailyRow{
				Name:         staff.Name,
				ClockInTime:  record.ClockIn.Format("15:04:05"),
				ClockOutTime: clockOut,
				Status:       record.Status,
			})
		}
	}

	return report.DailyReport{
		Date:        req.Date,
		GeneratedAt: now.Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

package report

import (
	"context"
	"testing"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/report"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	staff []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) ListStaff(ctx context.Context) ([]user.User, error) { return f.staff, nil }
func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error)   { return f.staff, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error      { return nil }
func (f *fakeUserRepo) UpdateName(ctx context.Context, id string, name string) error {
	return nil
}
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	return nil
}
func (f *fakeUserRepo) CountStaff(ctx context.Context) (int64, error) { return int64(len(f.staff)), nil }
func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error)   { return int64(len(f.staff)), nil }

type fakeAttendanceRepo struct {
	byUser map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	return record, nil
}
func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, userID string, workDate time.Time, clockOut time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrNotClockedIn
}
func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	return f.byUser[userID], nil
}
func (f *fakeAttendanceRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.byUser[userID] {
		if !record.ClockIn.Before(from) && record.ClockIn.Before(to) {
			out = append(out, record)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) DeleteByUserAndDate(ctx context.Context, userID string, workDate time.Time) error {
	return nil
}
func (f *fakeAttendanceRepo) ListDanglingBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func day(d, h, m int) time.Time {
	return time.Date(2025, 6, d, h, m, 0, 0, time.UTC)
}

func completeRecord(d, inH, inM, outH, outM int, status string) attendance.Attendance {
	in := day(d, inH, inM)
	out := day(d, outH, outM)
	return attendance.Attendance{ClockIn: in, ClockOut: &out, Status: status, WorkDate: day(d, 0, 0)}
}

func newTestService() *ReportServiceImpl {
	users := &fakeUserRepo{staff: []user.User{
		{ID: "u1", Name: "Andi"},
		{ID: "u2", Name: "Budi"},
		{ID: "u3", Name: "Citra"},
	}}
	records := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{
		"u1": {
			completeRecord(2, 8, 0, 16, 0, attendance.StatusOnTime),
			completeRecord(3, 8, 15, 17, 0, attendance.StatusLate),
		},
		"u2": {
			completeRecord(2, 8, 0, 12, 0, attendance.StatusOnTime),
			// Dangling record, must not count toward totals.
			{ClockIn: day(3, 8, 0), Status: attendance.StatusOnTime, WorkDate: day(3, 0, 0)},
			// Out of the requested month.
			completeRecord(2, 8, 0, 16, 0, attendance.StatusOnTime),
		},
	}}
	// Shift the out-of-month record to July.
	july := records.byUser["u2"][2]
	july.ClockIn = time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)
	out := time.Date(2025, 7, 2, 16, 0, 0, 0, time.UTC)
	july.ClockOut = &out
	records.byUser["u2"][2] = july

	svc := NewReportService(users, records)
	svc.now = func() time.Time { return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestMonthlyReportRosterOrderAndTotals(t *testing.T) {
	svc := newTestService()

	result, err := svc.Monthly(context.Background(), report.MonthlyReportRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", result.PeriodStart)
	assert.Equal(t, "2025-06-30", result.PeriodEnd)
	require.Len(t, result.Rows, 3)

	// Rows follow the roster's name order regardless of fetch completion.
	assert.Equal(t, "Andi", result.Rows[0].Name)
	assert.Equal(t, "Budi", result.Rows[1].Name)
	assert.Equal(t, "Citra", result.Rows[2].Name)

	andi := result.Rows[0]
	assert.Equal(t, 2, andi.DaysPresent)
	assert.Equal(t, 1, andi.DaysLate)
	assert.Equal(t, 480+525, andi.WorkedMinutes)
	assert.Equal(t, 45, andi.OvertimeMinutes)
	assert.Equal(t, "16h 45m", andi.Worked)
	assert.Equal(t, "45m", andi.Overtime)

	// Dangling and out-of-month records are excluded.
	budi := result.Rows[1]
	assert.Equal(t, 1, budi.DaysPresent)
	assert.Equal(t, 240, budi.WorkedMinutes)

	// A staff member with no records still gets a zero row.
	citra := result.Rows[2]
	assert.Zero(t, citra.DaysPresent)
	assert.Equal(t, "0m", citra.Worked)
}

func TestMonthlyReportValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Monthly(context.Background(), report.MonthlyReportRequest{Year: 2025, Month: 13})
	assert.Error(t, err)

	_, err = svc.Monthly(context.Background(), report.MonthlyReportRequest{Year: 1999, Month: 6})
	assert.Error(t, err)
}

func TestDailyReportSkipsAbsentStaff(t *testing.T) {
	svc := newTestService()

	result, err := svc.Daily(context.Background(), report.DailyReportRequest{Date: "2025-06-02"})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Andi", result.Rows[0].Name)
	assert.Equal(t, "08:00:00", result.Rows[0].ClockInTime)
	assert.Equal(t, "16:00:00", result.Rows[0].ClockOutTime)
	assert.Equal(t, "Budi", result.Rows[1].Name)
}

func TestDailyReportDanglingClockOutDash(t *testing.T) {
	svc := newTestService()

	result, err := svc.Daily(context.Background(), report.DailyReportRequest{Date: "2025-06-03"})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	// Budi's June 3rd record has no clock-out.
	assert.Equal(t, "Budi", result.Rows[1].Name)
	assert.Equal(t, "-", result.Rows[1].ClockOutTime)
}

func TestDailyReportValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Daily(context.Background(), report.DailyReportRequest{Date: "02-06-2025"})
	assert.Error(t, err)
}

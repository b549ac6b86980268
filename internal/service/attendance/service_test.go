package attendance

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func key(userID string, workDate time.Time) string {
	return userID + "|" + workDate.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	k := key(record.UserID, record.WorkDate)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	record.ID = k
	f.records[k] = &record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	record, ok := f.records[key(userID, workDate)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, userID string, workDate time.Time, clockOut time.Time) (attendance.Attendance, error) {
	record, ok := f.records[key(userID, workDate)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	record.ClockOut = &clockOut
	return *record, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.UserID == userID && len(out) < limit {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.UserID == userID && !record.ClockIn.Before(from) && record.ClockIn.Before(to) {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) DeleteByUserAndDate(ctx context.Context, userID string, workDate time.Time) error {
	k := key(userID, workDate)
	if _, ok := f.records[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, k)
	return nil
}

func (f *fakeAttendanceRepo) ListDanglingBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.ClockOut == nil && record.WorkDate.Before(cutoff) {
			out = append(out, *record)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	shifts settings.ShiftSettings
}

func (f *fakeSettingsRepo) GetShiftSettings(ctx context.Context) (settings.ShiftSettings, error) {
	return f.shifts, nil
}

func (f *fakeSettingsRepo) SaveShiftSettings(ctx context.Context, s settings.ShiftSettings) error {
	f.shifts = s
	return nil
}

func (f *fakeSettingsRepo) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	return settings.DefaultCompanySettings(), nil
}

func (f *fakeSettingsRepo) SaveCompanySettings(ctx context.Context, s settings.CompanySettings) error {
	return nil
}

type fakeFileService struct {
	uploaded []string
	deleted  []string
}

func (f *fakeFileService) UploadSelfie(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	path := "selfies/" + date.Format("2006-01-02") + "/" + userID + ".jpg"
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func newTestService(now time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo, *fakeFileService) {
	repo := newFakeAttendanceRepo()
	files := &fakeFileService{}
	svc := NewAttendanceService(repo, &fakeSettingsRepo{shifts: settings.DefaultShiftSettings()}, files)
	svc.now = func() time.Time { return now }
	return svc, repo, files
}

func selfieRequest(userID string) attendance.ClockInRequest {
	return attendance.ClockInRequest{
		UserID:     userID,
		File:       nopFile{bytes.NewReader([]byte("jpeg"))},
		FileHeader: &multipart.FileHeader{Filename: "selfie.jpg", Size: 1024},
	}
}

type nopFile struct{ *bytes.Reader }

func (nopFile) Close() error { return nil }

func TestClockInOnTime(t *testing.T) {
	now := time.Date(2025, 6, 2, 7, 55, 0, 0, time.UTC)
	svc, _, files := newTestService(now)

	resp, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOnTime, resp.Status)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Len(t, files.uploaded, 1)
	require.NotNil(t, resp.SelfieURL)
	assert.Contains(t, *resp.SelfieURL, "/uploads/selfies/")
}

func TestClockInLate(t *testing.T) {
	// Morning shift starts 08:00; 08:15 with zero grace is late.
	now := time.Date(2025, 6, 2, 8, 15, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	resp, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestClockInWithinGrace(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 10, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	shifts := settings.DefaultShiftSettings()
	shifts.GraceMinutes = 15
	svc := NewAttendanceService(repo, &fakeSettingsRepo{shifts: shifts}, &fakeFileService{})
	svc.now = func() time.Time { return now }

	resp, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOnTime, resp.Status)
}

func TestClockInAfternoonShift(t *testing.T) {
	// 16:05 falls in the afternoon shift (16:00 start), so it is late
	// against 16:00, not against the morning 08:00.
	now := time.Date(2025, 6, 2, 16, 5, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	resp, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestClockInTwiceRejected(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), selfieRequest("u1"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutFlow(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.ClockIn(context.Background(), selfieRequest("u1"))
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 2, 16, 30, 0, 0, time.UTC) }

	resp, err := svc.ClockOut(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, resp.ClockOutTime)
	assert.Equal(t, "2025-06-02 16:30:00", *resp.ClockOutTime)

	// Second clock-out must not move the timestamp.
	_, err = svc.ClockOut(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	now := time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.ClockOut(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestTodayStateTransitions(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)
	ctx := context.Background()

	today, err := svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StateNotClockedIn, today.State)
	assert.Nil(t, today.Record)

	_, err = svc.ClockIn(ctx, selfieRequest("u1"))
	require.NoError(t, err)

	today, err = svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StateClockedIn, today.State)
	require.NotNil(t, today.Record)

	_, err = svc.ClockOut(ctx, "u1")
	require.NoError(t, err)

	today, err = svc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StateClockedOut, today.State)
}

func TestResetTodayDeletesRecordAndSelfie(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc, repo, files := newTestService(now)
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, selfieRequest("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.ResetToday(ctx, "u1"))
	assert.Empty(t, repo.records)
	assert.Len(t, files.deleted, 1)

	// Repeat reset has nothing to delete.
	err = svc.ResetToday(ctx, "u1")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	// The user can clock in again after a reset.
	_, err = svc.ClockIn(ctx, selfieRequest("u1"))
	assert.NoError(t, err)
}

func TestClockInRequiresSelfie(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(now)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{UserID: "u1"})
	assert.Error(t, err)
}

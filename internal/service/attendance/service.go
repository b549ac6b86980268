package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
	"github.com/infinithree/absensi-backend-go/internal/service/file"
)

const defaultHistoryLimit = 30

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settingsRepo settings.SettingsRepository
	fileService  file.FileService
	now          func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	settingsRepository settings.SettingsRepository,
	fileService file.FileService,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		settingsRepo:         settingsRepository,
		fileService:          fileService,
		now:                  time.Now,
	}
}

func workDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClockIn implements attendance.AttendanceService. The status is derived
// once, at clock-in, from the shift start applicable at that moment plus the
// configured grace window. It is stored, not recomputed later.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	workDate := workDateOf(now)

	shifts, err := s.settingsRepo.GetShiftSettings(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load shift settings: %w", err)
	}

	shiftStart, err := shifts.ApplicableStart(now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift start: %w", err)
	}

	// The storage path is what gets persisted; responses resolve it to a
	// public URL on the way out.
	var selfiePath *string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadSelfie(ctx, req.UserID, workDate, req.File, req.FileHeader.Filename)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		selfiePath = &path
	}

	record := attendance.Attendance{
		UserID:    req.UserID,
		WorkDate:  workDate,
		ClockIn:   now,
		Status:    attendance.StatusFor(now, shiftStart, shifts.Grace()),
		SelfieURL: selfiePath,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.now()

	updated, err := s.AttendanceRepository.SetClockOut(ctx, userID, workDateOf(now), now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

// Today implements attendance.AttendanceService. The day state is always
// rederived from the stored record, never cached.
func (s *AttendanceServiceImpl) Today(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, workDateOf(s.now()))
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	resp := attendance.TodayResponse{State: attendance.StateOf(record)}
	if record != nil {
		r := s.toResponse(ctx, *record)
		resp.Record = &r
	}

	return resp, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, userID string, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.toResponse(ctx, record))
	}

	return responses, nil
}

// toResponse resolves the stored selfie path into a public URL.
func (s *AttendanceServiceImpl) toResponse(ctx context.Context, record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.ToResponse(record)
	if record.SelfieURL != nil {
		if url, err := s.fileService.GetFileURL(ctx, *record.SelfieURL, 0); err == nil {
			resp.SelfieURL = &url
		}
	}
	return resp
}

// ResetToday implements attendance.AttendanceService. Destructive: the
// selfie goes with the record.
func (s *AttendanceServiceImpl) ResetToday(ctx context.Context, targetUserID string) error {
	workDate := workDateOf(s.now())

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, targetUserID, workDate)
	if err != nil {
		return err
	}
	if record == nil {
		return attendance.ErrAttendanceNotFound
	}

	if err := s.AttendanceRepository.DeleteByUserAndDate(ctx, targetUserID, workDate); err != nil {
		return err
	}

	if record.SelfieURL != nil {
		if err := s.fileService.DeleteFile(ctx, *record.SelfieURL); err != nil {
			slog.Warn("Failed to delete selfie after reset", "user_id", targetUserID, "error", err)
		}
	}

	slog.Info("Attendance reset", "user_id", targetUserID, "work_date", workDate.Format("2006-01-02"))
	return nil
}

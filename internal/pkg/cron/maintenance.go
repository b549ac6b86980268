package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/pkg/jwt"
)

// MaintenanceJobs holds the housekeeping jobs: expired refresh-token
// cleanup, revocation-list pruning, and reporting of attendance sessions
// left open past midnight. Open sessions are never auto-closed; they stay
// dangling so reports can flag the missing clock-out.
type MaintenanceJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	attendanceRepo   attendance.AttendanceRepository
	jwtService       jwt.Service
}

func NewMaintenanceJobs(
	refreshTokenRepo auth.RefreshTokenRepository,
	attendanceRepo attendance.AttendanceRepository,
	jwtService jwt.Service,
) *MaintenanceJobs {
	return &MaintenanceJobs{
		refreshTokenRepo: refreshTokenRepo,
		attendanceRepo:   attendanceRepo,
		jwtService:       jwtService,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 1*time.Hour, j.PurgeExpiredRefreshTokens)
	scheduler.AddJob("purge_revoked_access_tokens", 1*time.Hour, j.PurgeRevokedAccessTokens)
	scheduler.AddJob("report_dangling_attendances", 1*time.Hour, j.ReportDanglingAttendances)
}

func (j *MaintenanceJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "count", deleted)
	}
	return nil
}

func (j *MaintenanceJobs) PurgeRevokedAccessTokens(ctx context.Context) error {
	// Access tokens are short-lived; 24h keeps the revocation map bounded.
	purged := j.jwtService.PurgeRevoked(24 * time.Hour)
	if purged > 0 {
		slog.Info("Cron: Purged stale token revocations", "count", purged)
	}
	return nil
}

func (j *MaintenanceJobs) ReportDanglingAttendances(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	if time.Now().Hour() != 0 {
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)
	dangling, err := j.attendanceRepo.ListDanglingBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list dangling attendances: %w", err)
	}

	for _, record := range dangling {
		slog.Warn("Cron: Attendance session left open",
			"user_id", record.UserID,
			"work_date", record.WorkDate.Format("2006-01-02"),
			"clock_in", record.ClockIn.Format(time.RFC3339))
	}
	if len(dangling) > 0 {
		slog.Info("Cron: Dangling attendance sessions found", "count", len(dangling))
	}
	return nil
}
